// Command sspjweb serves .ssbp conversion over HTTP.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "golang.org/x/net/trace"

	"badc0de.net/pkg/go-ssbp/config"
	"badc0de.net/pkg/go-ssbp/texture"
	"badc0de.net/pkg/go-ssbp/web"
)

var (
	listenAddress  = flag.String("listen_address", ":8080", "http listen address for sspjweb")
	debugWebServer = flag.String("debug_web_server_listen_address", "", "where the debug server will listen")
	configPath     = flag.String("config", "", "Optional ini file with conversion settings")
	imageDir       = flag.String("image_dir", ".", "Directory holding the loose images uploaded projects refer to")
	textureDir     = flag.String("texture_dir", "", "Directory holding texture archives; overrides the configuration")
)

func main() {
	flagutil.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		glog.Exitf("%v", err)
	}
	if *textureDir != "" {
		cfg.Input.TextureDir = *textureDir
	}

	var archiveDirs []string
	if cfg.Input.TextureDir != "" {
		archiveDirs = append(archiveDirs, cfg.Input.TextureDir)
	}
	textures := texture.New(*imageDir, "", archiveDirs...)
	if cfg.Input.ExtractedArchives {
		textures.OpenArchive = texture.OpenExtracted
	}

	if *debugWebServer != "" {
		// /debug/requests from x/net/trace.
		go http.ListenAndServe(*debugWebServer, nil)
	}

	r := mux.NewRouter()
	web.NewHandler(textures, cfg.Settings()).RegisterRoutes(r)
	glog.Infof("serving on %s", *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.LoggingHandler(os.Stderr, r)))
}
