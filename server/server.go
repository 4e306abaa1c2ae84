package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wwqdrh/minheap"
	zxerrors "github.com/wwqdrh/minheap/internal/errors"
)

type Server struct {
	heap   *minheap.SyncHeap
	logger *zap.Logger
	engine *gin.Engine
}

type (
	valueResp struct {
		Value int `json:"value"`
		Size  int `json:"size"`
	}

	statResp struct {
		Size     int   `json:"size"`
		Capacity int   `json:"capacity"`
		Snapshot []int `json:"snapshot"`
		Valid    bool  `json:"valid"`
	}

	dumpResp struct {
		Data []int `json:"data"`
	}

	errResp struct {
		Code  string `json:"code"`
		Error string `json:"error"`
	}
)

func New(h *minheap.SyncHeap, l *zap.Logger) *Server {
	s := &Server{heap: h, logger: l, engine: gin.New()}

	s.engine.Use(LogHandler(l))
	s.engine.GET("/health", s.health)
	s.engine.GET("/heap", s.stat)
	s.engine.GET("/heap/dump", s.dump)
	s.engine.POST("/heap", s.add)
	s.engine.DELETE("/heap", s.remove)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run 阻塞直到 ctx 取消，然后优雅关闭
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", addr), zap.Int("capacity", s.heap.Cap()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return pkgerrors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("server shutting down")
	return pkgerrors.Wrap(srv.Shutdown(shutdown), "shutdown")
}

func (s *Server) health(ctx *gin.Context) {
	ctx.String(http.StatusOK, "ok")
}

func (s *Server) stat(ctx *gin.Context) {
	size, snapshot, valid := s.heap.Stat()
	ctx.JSON(http.StatusOK, statResp{
		Size:     size,
		Capacity: s.heap.Cap(),
		Snapshot: snapshot,
		Valid:    valid,
	})
}

func (s *Server) dump(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dumpResp{Data: s.heap.Dump()})
}

func (s *Server) add(ctx *gin.Context) {
	value, err := strconv.Atoi(ctx.Query("value"))
	if err != nil {
		s.fail(ctx, zxerrors.WithCode(zxerrors.ErrInvalidArgument, pkgerrors.Wrap(err, "parse value")))
		return
	}
	size, err := s.heap.AddLen(value)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	s.logger.Debug("heap add", zap.Int("value", value))
	ctx.JSON(http.StatusCreated, valueResp{Value: value, Size: size})
}

func (s *Server) remove(ctx *gin.Context) {
	value, size, err := s.heap.RemoveLen()
	if err != nil {
		s.fail(ctx, err)
		return
	}
	s.logger.Debug("heap remove", zap.Int("value", value))
	ctx.JSON(http.StatusOK, valueResp{Value: value, Size: size})
}

func (s *Server) fail(ctx *gin.Context, err error) {
	code := zxerrors.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case zxerrors.ErrInvalidArgument:
		status = http.StatusBadRequest
	case zxerrors.ErrHeapFull:
		status = http.StatusConflict
	case zxerrors.ErrEmptyHeap:
		status = http.StatusNotFound
	}
	_ = ctx.Error(err)
	ctx.JSON(status, errResp{Code: string(code), Error: err.Error()})
}
