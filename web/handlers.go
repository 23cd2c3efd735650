// Package web serves .ssbp conversion over HTTP.
package web

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/zip"

	"badc0de.net/pkg/go-ssbp/datafiles"
	"badc0de.net/pkg/go-ssbp/paths"
	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/sspj"
	"badc0de.net/pkg/go-ssbp/texture"
)

// MAX_UPLOAD_SIZE bounds the size of an uploaded .ssbp.
const MAX_UPLOAD_SIZE = 64 << 20

type Handler struct {
	textures *texture.Resolver
	settings sspj.Settings
}

// NewHandler constructs a web handler looking up images with textures. The
// images each conversion needs are bundled with its documents.
func NewHandler(textures *texture.Resolver, settings sspj.Settings) *Handler {
	return &Handler{textures: textures, settings: settings}
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(datafiles.UploadHTML())
}

func (h *Handler) convertHandler(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(mux.Vars(r)["name"], paths.SPRITE_EXT)
	if name == "" {
		http.Error(w, "missing project name", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MAX_UPLOAD_SIZE))
	if err != nil {
		http.Error(w, "could not read upload: "+err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	tmp, err := os.MkdirTemp("", "sspjweb-")
	if err != nil {
		glog.Errorf("creating texture directory: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(tmp)

	buf := &bytes.Buffer{}
	sink := sspj.NewZipSink(zip.NewWriter(buf))
	conv := &sspj.Converter{
		Textures: h.textures.ForDirs(h.textures.SourceDir, tmp),
		Settings: h.settings,
	}
	res, err := conv.Convert(name, data, sink)
	if err != nil {
		glog.Warningf("converting %q (%d bytes): %v", name, len(data), err)
		status := http.StatusInternalServerError
		if ssbp.IsInputError(err) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	if err := sink.AddDir(tmp); err != nil {
		glog.Errorf("bundling textures of %q: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := sink.Close(); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	glog.V(1).Infof("converted %q: %d cell maps, %d anime packs, %d effects", name, len(res.CellMaps), len(res.AnimePacks), len(res.Effects))

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.zip"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler).Methods(http.MethodGet)
	r.HandleFunc("/convert/{name:[A-Za-z0-9_.-]+}", h.convertHandler).Methods(http.MethodPost)
}
