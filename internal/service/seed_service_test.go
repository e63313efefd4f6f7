package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/madworx/shiftsync/internal/model"
	"github.com/madworx/shiftsync/internal/repository"
)

func setupTestSeedService() (SeedService, *mockUserRepo, *mockStoreRepo, *mockShiftRepo) {
	userRepo := newMockUserRepo()
	storeRepo := newMockStoreRepo()
	shiftRepo := newMockShiftRepo()
	repo := &repository.Repository{
		User:  userRepo,
		Store: storeRepo,
		Shift: shiftRepo,
	}
	return NewSeedService(repo, zap.NewNop()), userRepo, storeRepo, shiftRepo
}

func TestSeedService_Seed(t *testing.T) {
	svc, userRepo, storeRepo, shiftRepo := setupTestSeedService()

	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("Seed 应成功: %v", err)
	}

	if len(userRepo.users) != 3 {
		t.Errorf("期望 3 个用户，实际=%d", len(userRepo.users))
	}
	if len(storeRepo.stores) != 3 {
		t.Errorf("期望 3 个门店，实际=%d", len(storeRepo.stores))
	}
	if len(shiftRepo.shifts) != 0 {
		t.Errorf("播种后班次应为空，实际=%d", len(shiftRepo.shifts))
	}

	admin, ok := userRepo.users["admin-1"]
	if !ok {
		t.Fatal("应存在 admin-1")
	}
	if admin.Role != model.RoleAdmin || admin.Email != "admin@example.com" {
		t.Errorf("admin-1 信息不符: role=%s email=%s", admin.Role, admin.Email)
	}
	if len(admin.StoreIDs) != 3 {
		t.Errorf("admin-1 应属于全部 3 个门店，实际=%v", admin.StoreIDs)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")); err != nil {
		t.Error("admin-1 密码哈希应匹配 admin123")
	}

	john, ok := userRepo.users["user-1"]
	if !ok {
		t.Fatal("应存在 user-1")
	}
	if john.Name != "John Doe" || !john.StoreIDs.Contains("store-1") || !john.StoreIDs.Contains("store-2") {
		t.Errorf("user-1 信息不符: %+v", john)
	}

	jane, ok := userRepo.users["user-2"]
	if !ok {
		t.Fatal("应存在 user-2")
	}
	if jane.Name != "Jane Smith" || !jane.StoreIDs.Contains("store-2") || !jane.StoreIDs.Contains("store-3") {
		t.Errorf("user-2 信息不符: %+v", jane)
	}

	downtown, ok := storeRepo.stores["store-1"]
	if !ok {
		t.Fatal("应存在 store-1")
	}
	if downtown.Name != "Downtown Store" {
		t.Errorf("期望 store-1 为 Downtown Store，实际=%s", downtown.Name)
	}
	if len(downtown.TimeSlots) != 3 || downtown.TimeSlots[0] != "09:00 - 13:00" {
		t.Errorf("store-1 时间段不符: %v", downtown.TimeSlots)
	}
}

// 重复播种：旧数据（含班次）被清空，结果与首次播种一致
func TestSeedService_Seed_Idempotent(t *testing.T) {
	svc, userRepo, storeRepo, shiftRepo := setupTestSeedService()

	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("第一次 Seed 应成功: %v", err)
	}

	// 模拟播种后产生的业务数据
	seedShift(shiftRepo, "s1", "store-1", "user-1", "John Doe", 1, "09:00 - 13:00", model.ShiftStatusPending, "2026-08-24")
	userRepo.users["user-9"] = &model.User{ID: "user-9", Name: "Extra", Role: model.RoleUser}

	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("第二次 Seed 应成功: %v", err)
	}

	if len(userRepo.users) != 3 {
		t.Errorf("重复播种后应恰好 3 个用户，实际=%d", len(userRepo.users))
	}
	if _, ok := userRepo.users["user-9"]; ok {
		t.Error("播种应清空既有用户")
	}
	if len(storeRepo.stores) != 3 {
		t.Errorf("重复播种后应恰好 3 个门店，实际=%d", len(storeRepo.stores))
	}
	if len(shiftRepo.shifts) != 0 {
		t.Errorf("重复播种后班次应清零，实际=%d", len(shiftRepo.shifts))
	}
}
