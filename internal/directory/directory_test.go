package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/growthdesk/crm-backend/internal/entity"
)

type MockUserSource struct {
	mock.Mock
}

func (m *MockUserSource) SelectAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

// ============ TESTES DA DIRECTORY ============

func TestLoadIndexesUsersByID(t *testing.T) {
	src := new(MockUserSource)
	src.On("SelectAll", mock.Anything).Return([]entity.User{
		{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: entity.RoleAdmin},
		{ID: "u2", Name: "Bruno", Email: "bruno@example.com", Role: entity.RoleSales},
	}, nil).Once()

	dir, err := Load(context.Background(), src)
	assert.NoError(t, err)

	u, ok := dir.Get("u2")
	assert.True(t, ok)
	assert.Equal(t, "Bruno", u.Name)

	_, ok = dir.Get("ghost")
	assert.False(t, ok)
}

// All devolve cópia na ordem original; mexer nela não afeta a directory
func TestAllReturnsCopyInOrder(t *testing.T) {
	src := new(MockUserSource)
	src.On("SelectAll", mock.Anything).Return([]entity.User{
		{ID: "u1", Name: "Ana"},
		{ID: "u2", Name: "Bruno"},
	}, nil).Once()

	dir, err := Load(context.Background(), src)
	assert.NoError(t, err)

	all := dir.All()
	assert.Equal(t, []string{"u1", "u2"}, []string{all[0].ID, all[1].ID})

	all[0].Name = "Hackeado"
	again := dir.All()
	assert.Equal(t, "Ana", again[0].Name)
}

func TestLoadPropagatesSourceError(t *testing.T) {
	src := new(MockUserSource)
	src.On("SelectAll", mock.Anything).Return(nil, errors.New("users offline")).Once()

	dir, err := Load(context.Background(), src)
	assert.Error(t, err)
	assert.Nil(t, dir)
}
