package web

import (
	"fmt"
	"net"
	"net/http"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	HostFlag = "host"
	PortFlag = "port"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   HostFlag,
			Usage:  "listening host",
			Value:  "",
			EnvVar: "WEB_HOST",
		},
		cli.IntFlag{
			Name:   PortFlag,
			Usage:  "listening port",
			Value:  5001,
			EnvVar: "PORT",
		},
	)
}

// Web serves the gin engine. If the configured port is occupied it logs
// the conflict and falls back to the next port once.
type Web struct {
	host string
	port int
	r    *gin.Engine
	ln   net.Listener
}

func New(c *cli.Context, r *gin.Engine) *Web {
	return &Web{
		host: c.String(HostFlag),
		port: c.Int(PortFlag),
		r:    r,
	}
}

func (s *Web) Serve() error {
	ln, err := net.Listen("tcp", fmt.Sprintf("%v:%v", s.host, s.port))
	if err != nil && errors.Is(err, syscall.EADDRINUSE) {
		log.Errorf("port %v is already in use, trying port %v", s.port, s.port+1)
		ln, err = net.Listen("tcp", fmt.Sprintf("%v:%v", s.host, s.port+1))
	}
	if err != nil {
		return errors.Wrap(err, "failed to listen")
	}
	s.ln = ln
	log.Infof("serving web at %v", ln.Addr())
	return http.Serve(ln, s.r)
}

func (s *Web) Close() {
	if s.ln != nil {
		_ = s.ln.Close()
	}
}
