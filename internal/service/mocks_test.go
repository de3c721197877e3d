package service

import (
	"sort"
	"strings"

	"device-warranty-server/internal/domain"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(id string) (*domain.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByPhone(phone string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Update(user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) List(offset, limit int) ([]domain.User, int64, error) {
	var all []domain.User
	for _, u := range m.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].FullName < all[j].FullName })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type mockPassportRepo struct {
	passports map[int64]*domain.Passport
	nextID    int64
	failWith  error
}

func newMockPassportRepo() *mockPassportRepo {
	return &mockPassportRepo{passports: make(map[int64]*domain.Passport), nextID: 1}
}

func (m *mockPassportRepo) Create(p *domain.Passport) error {
	if m.failWith != nil {
		return m.failWith
	}
	p.ID = m.nextID
	m.nextID++
	m.passports[p.ID] = p
	return nil
}

func (m *mockPassportRepo) FindByID(id int64) (*domain.Passport, error) {
	return m.passports[id], nil
}

func (m *mockPassportRepo) FindByPrefix(prefix string) ([]domain.Passport, error) {
	var result []domain.Passport
	for _, p := range m.passports {
		if p.SerialPrefix == prefix {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockPassportRepo) FindByPrefixOf(serialNumber string) ([]domain.Passport, error) {
	var result []domain.Passport
	for _, p := range m.passports {
		if strings.HasPrefix(serialNumber, p.SerialPrefix) {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockPassportRepo) Update(p *domain.Passport) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.passports[p.ID] = p
	return nil
}

func (m *mockPassportRepo) Delete(id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.passports[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.passports, id)
	return nil
}

func (m *mockPassportRepo) List(offset, limit int) ([]domain.Passport, int64, error) {
	var all []domain.Passport
	for _, p := range m.passports {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type mockDeviceRepo struct {
	devices  map[string]*domain.Device
	failWith error
}

func newMockDeviceRepo() *mockDeviceRepo {
	return &mockDeviceRepo{devices: make(map[string]*domain.Device)}
}

func (m *mockDeviceRepo) Create(device *domain.Device) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.devices[device.SerialNumber] = device
	return nil
}

func (m *mockDeviceRepo) FindBySerial(serialNumber string) (*domain.Device, error) {
	return m.devices[serialNumber], nil
}

func (m *mockDeviceRepo) FindByUser(userID string) ([]domain.Device, error) {
	var result []domain.Device
	for _, d := range m.devices {
		if d.UserID != nil && *d.UserID == userID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SerialNumber < result[j].SerialNumber })
	return result, nil
}

func (m *mockDeviceRepo) Update(device *domain.Device) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.devices[device.SerialNumber] = device
	return nil
}

func (m *mockDeviceRepo) Delete(serialNumber string) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.devices[serialNumber]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.devices, serialNumber)
	return nil
}

type mockRenovationRepo struct {
	renovations map[int64]*domain.Renovation
	nextID      int64
	failWith    error
}

func newMockRenovationRepo() *mockRenovationRepo {
	return &mockRenovationRepo{renovations: make(map[int64]*domain.Renovation), nextID: 1}
}

func (m *mockRenovationRepo) Create(r *domain.Renovation) error {
	if m.failWith != nil {
		return m.failWith
	}
	r.ID = m.nextID
	m.nextID++
	m.renovations[r.ID] = r
	return nil
}

func (m *mockRenovationRepo) Delete(id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.renovations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.renovations, id)
	return nil
}
