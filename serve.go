package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	"github.com/sharehub-io/web-api/handlers/category"
	"github.com/sharehub-io/web-api/handlers/resource"
	"github.com/sharehub-io/web-api/models"
	"github.com/sharehub-io/web-api/services/common"
	"github.com/sharehub-io/web-api/services/upload"
	w "github.com/sharehub-io/web-api/services/web"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterPGFlags(c.Flags)
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = cs.RegisterPprofFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = upload.RegisterFlags(c.Flags)
	c.Flags = common.RegisterFlags(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting DB
	pg := cs.NewPG(c)
	defer pg.Close()

	// Setting Migrations
	err := pgMigrate(c)
	if err != nil {
		return err
	}

	// Setting Upload Store
	store := upload.New(c)

	// Creating storage layout for already known categories
	err = bootstrapStore(pg, store)
	if err != nil {
		return err
	}

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Pprof
	pprof := cs.NewPprof(c)
	if pprof != nil {
		servers = append(servers, pprof)
		defer pprof.Close()
	}

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.Use(cors.New(makeCORSConfig(c)))

	// Serving stored files, covers and thumbnails directly
	r.Static("/uploads", store.Root())

	// Setting Web
	web := w.New(c, r)
	servers = append(servers, web)
	defer web.Close()

	// Setting CategoryHandler
	category.RegisterHandler(r, pg)

	// Setting ResourceHandler
	resource.RegisterHandler(r, pg, store)

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}

func bootstrapStore(pg *cs.PG, store *upload.Store) error {
	var slugs []string
	if db := pg.Get(); db != nil {
		categories, err := models.GetCategoryList(context.Background(), db)
		if err != nil {
			return err
		}
		for _, cat := range categories {
			slugs = append(slugs, upload.Slug(cat.Name))
		}
	}
	return store.Bootstrap(slugs)
}

func makeCORSConfig(c *cli.Context) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	origins := common.GetCORSAllowedOrigins(c)
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
