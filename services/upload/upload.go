package upload

import (
	"github.com/urfave/cli"
)

const (
	UploadDirFlag = "upload-dir"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   UploadDirFlag,
			Usage:  "root directory for uploaded files",
			Value:  "uploads",
			EnvVar: "UPLOAD_DIR",
		},
	)
}

// Store places uploaded files and derived thumbnails under a single
// storage root. Database rows keep paths relative to that root, so the
// root can be relocated without rewriting rows.
type Store struct {
	root string
}

func New(c *cli.Context) *Store {
	return NewStore(c.String(UploadDirFlag))
}

func NewStore(root string) *Store {
	return &Store{
		root: root,
	}
}

func (s *Store) Root() string {
	return s.root
}
