package jsonstore

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/internal/domain/user"
	"github.com/xiebiao/flatstore/internal/infrastructure/persistence/store"
)

// userRepository 用户仓储实现（JSON集合）
// 说明：
// 1. 邮箱唯一性在Create中通过线性扫描检查（没有索引）
// 2. 密码原样保存
type userRepository struct {
	users *store.Collection[UserRecord]
}

// NewUserRepository 创建用户仓储
func NewUserRepository(backend store.Backend, log *zap.Logger) user.Repository {
	return &userRepository{
		users: store.NewCollection(backend, UsersCollection, SeedUsers, log),
	}
}

func (r *userRepository) List(ctx context.Context) ([]*user.User, error) {
	records, err := r.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(records, func(rec UserRecord, _ int) *user.User {
		return toUser(rec)
	}), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	records, err := r.users.Load(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := lo.Find(records, func(rec UserRecord) bool { return rec.Email == email })
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return toUser(rec), nil
}

// Create 追加用户并回填ID
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	records, err := r.users.Load(ctx)
	if err != nil {
		return err
	}

	if lo.ContainsBy(records, func(rec UserRecord) bool { return rec.Email == u.Email }) {
		return user.ErrEmailDuplicate
	}

	u.ID = nextID(records, func(rec UserRecord) int { return rec.ID })
	records = append(records, UserRecord{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		BirthDate: u.BirthDate,
		Password:  u.Password,
	})

	return r.users.Save(ctx, records)
}

func toUser(rec UserRecord) *user.User {
	return &user.User{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		BirthDate: rec.BirthDate,
		Password:  rec.Password,
	}
}
