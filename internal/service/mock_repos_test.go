package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/madworx/shiftsync/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) BatchCreate(_ context.Context, users []model.User) error {
	for i := range users {
		u := users[i]
		m.users[u.ID] = &u
	}
	return nil
}

func (m *mockUserRepo) DeleteAll(_ context.Context) error {
	m.users = make(map[string]*model.User)
	return nil
}

// ── Mock StoreRepository ──

type mockStoreRepo struct {
	stores map[string]*model.Store
}

func newMockStoreRepo() *mockStoreRepo {
	return &mockStoreRepo{stores: make(map[string]*model.Store)}
}

func (m *mockStoreRepo) GetByID(_ context.Context, id string) (*model.Store, error) {
	if s, ok := m.stores[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStoreRepo) ListByIDs(_ context.Context, ids []string) ([]model.Store, error) {
	result := []model.Store{}
	for _, id := range ids {
		if s, ok := m.stores[id]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockStoreRepo) BatchCreate(_ context.Context, stores []model.Store) error {
	for i := range stores {
		s := stores[i]
		m.stores[s.ID] = &s
	}
	return nil
}

func (m *mockStoreRepo) DeleteAll(_ context.Context) error {
	m.stores = make(map[string]*model.Store)
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[string]*model.Shift
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*model.Shift)}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	cp := *shift
	m.shifts[shift.ID] = &cp
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) ListByStoreWeek(_ context.Context, storeID, weekStart string) ([]model.Shift, error) {
	result := []model.Shift{}
	for _, s := range m.shifts {
		if s.StoreID == storeID && s.WeekStart == weekStart {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	s, ok := m.shifts[id]
	if !ok {
		return nil // 与 GORM Updates 一致：无匹配行不报错
	}
	for k, v := range fields {
		switch k {
		case "day_of_week":
			s.DayOfWeek = v.(int)
		case "time_slot":
			s.TimeSlot = v.(string)
		case "shift_type":
			s.ShiftType = v.(string)
		case "notes":
			s.Notes = v.(string)
		}
	}
	return nil
}

func (m *mockShiftRepo) UpdateStatus(_ context.Context, id, status string) error {
	if s, ok := m.shifts[id]; ok {
		s.Status = status
	}
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id string) error {
	delete(m.shifts, id)
	return nil
}

func (m *mockShiftRepo) FindActiveSlot(_ context.Context, storeID string, dayOfWeek int, timeSlot, weekStart, excludeID string) (*model.Shift, error) {
	for _, s := range m.shifts {
		if s.StoreID != storeID || s.DayOfWeek != dayOfWeek ||
			s.TimeSlot != timeSlot || s.WeekStart != weekStart {
			continue
		}
		active := false
		for _, st := range model.ActiveShiftStatuses {
			if s.Status == st {
				active = true
				break
			}
		}
		if !active {
			continue
		}
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) DeleteAll(_ context.Context) error {
	m.shifts = make(map[string]*model.Shift)
	return nil
}
