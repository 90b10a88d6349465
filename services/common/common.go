package common

import (
	"strings"

	"github.com/urfave/cli"
)

var (
	CORSAllowedOriginsFlag = "cors-allowed-origins"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   CORSAllowedOriginsFlag,
			Usage:  "comma-separated list of allowed CORS origins",
			Value:  "*",
			EnvVar: "CORS_ALLOWED_ORIGINS",
		},
	)
}

func GetCORSAllowedOrigins(c *cli.Context) []string {
	var origins []string
	for _, o := range strings.Split(c.String(CORSAllowedOriginsFlag), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
