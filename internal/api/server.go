// Package api exposes uploaded light-field packages over HTTP: upload a
// raw .lfp body, then pull the manifest, individual record payloads, or
// the decoded depth table back out.
package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/lfptools/lfpsplit/pkg/lfp"
)

// maxUploadBytes bounds a package upload. Captures are tens of
// megabytes; anything near this limit is not a camera file.
const maxUploadBytes = 512 << 20

type Server struct {
	store *PackageStore
	clock func() time.Time
}

func NewServer(store *PackageStore) *Server {
	if store == nil {
		store = NewPackageStore()
	}
	return &Server{store: store, clock: time.Now}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/packages", s.handleUploadPackage)
	e.GET("/v1/packages/:id", s.handleGetPackage)
	e.GET("/v1/packages/:id/records/:index", s.handleGetRecord)
	e.GET("/v1/packages/:id/depth", s.handleGetDepth)
	e.DELETE("/v1/packages/:id", s.handleDeletePackage)
}

func (s *Server) handleUploadPackage(c *echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxUploadBytes+1))
	if err != nil {
		return writeBadRequest(c, "failed to read request body")
	}
	if len(body) > maxUploadBytes {
		return writeError(c, http.StatusRequestEntityTooLarge, "invalid_request_error", "package too large")
	}

	records, parseErr := lfp.Parse(body)
	if errors.Is(parseErr, lfp.ErrNotPackage) {
		return writeBadRequest(c, "body is not a light-field package")
	}

	pkg := &storedPackage{
		ID:        uuid.NewString(),
		Name:      c.QueryParam("name"),
		Size:      len(body),
		Records:   records,
		ParseErr:  parseErr,
		CreatedAt: s.clock(),
	}
	s.store.Put(pkg)
	return writeJSON(c, http.StatusCreated, manifestOf(pkg))
}

func (s *Server) handleGetPackage(c *echo.Context) error {
	pkg, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "package not found")
	}
	return writeJSON(c, http.StatusOK, manifestOf(pkg))
}

func (s *Server) handleGetRecord(c *echo.Context) error {
	pkg, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "package not found")
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(pkg.Records) {
		return writeNotFound(c, "record not found")
	}
	return c.Blob(http.StatusOK, "application/octet-stream", pkg.Records[index].Data)
}

func (s *Server) handleGetDepth(c *echo.Context) error {
	pkg, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "package not found")
	}
	if len(pkg.Records) < 2 {
		return writeNotFound(c, "package has no depth table")
	}
	text := lfp.DepthTableText(pkg.Records[1].Data)
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", text)
}

func (s *Server) handleDeletePackage(c *echo.Context) error {
	id := c.Param("id")
	if !s.store.Delete(id) {
		return writeNotFound(c, "package not found")
	}
	return writeJSON(c, http.StatusOK, map[string]any{"id": id, "deleted": true})
}

func manifestOf(pkg *storedPackage) PackageManifest {
	m := PackageManifest{
		ID:          pkg.ID,
		Name:        pkg.Name,
		Size:        pkg.Size,
		RecordCount: len(pkg.Records),
		Complete:    len(pkg.Records) >= 3,
		Records:     make([]RecordManifest, 0, len(pkg.Records)),
		CreatedAt:   pkg.CreatedAt,
	}
	if pkg.ParseErr != nil {
		m.ParseError = pkg.ParseErr.Error()
	}
	for i, rec := range pkg.Records {
		rm := RecordManifest{
			Index: i,
			Kind:  "image",
			Type:  rec.TypeString(),
			Hash:  rec.Hash,
			Size:  rec.Len(),
		}
		switch i {
		case 0:
			rm.Kind = "metadata"
		case 1:
			rm.Kind = "depth"
			n := rec.Len() / 4
			rm.DepthSamples = &n
		default:
			n := i - 2
			rm.ImageIndex = &n
		}
		m.Records = append(m.Records, rm)
	}
	return m
}
