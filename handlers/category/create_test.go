package category

import (
	"testing"
)

func TestCreateArgsValidate(t *testing.T) {
	cases := []struct {
		args CreateArgs
		ok   bool
	}{
		{CreateArgs{Name: "Programming Guides"}, true},
		{CreateArgs{Name: "Guides", Description: "docs"}, true},
		{CreateArgs{Description: "no name"}, false},
		{CreateArgs{}, false},
	}
	for _, c := range cases {
		err := c.args.Validate()
		if c.ok && err != nil {
			t.Errorf("args %+v rejected: %v", c.args, err)
		}
		if !c.ok && err == nil {
			t.Errorf("args %+v accepted", c.args)
		}
	}
}
