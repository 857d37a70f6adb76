package mysql

import (
	"Tieba_Community/internal/model"
	"Tieba_Community/internal/pkg"

	"gorm.io/gorm"
)

// SchemaManager provisions the relation set. Creation order follows the
// dependency chain (users before bars before posts before comments before
// the join tables); drops run in strict reverse so no table ever goes away
// while a dependent still references it.
type SchemaManager struct {
	DB *gorm.DB
}

// Seeded smoke-test identity recreated by ResetSchema.
const (
	SeedUserName     = "testUser"
	SeedUserPassword = "testPassword"
	SeedUserSalt     = "testSalt"
	SeedUserKind     = "?"
	SeedUserExp      = 100
)

func schemaOrder() []any {
	return []any{
		&model.User{},
		&model.Bar{},
		&model.Post{},
		&model.Comment{},
		&model.BarFollow{},
		&model.PostLike{},
		&model.CommentLike{},
		&model.EngagementOutbox{},
	}
}

// EnsureSchema creates any missing relations, including the foreign keys
// declared on the models, so ghost parent ids are rejected at the store.
func (m *SchemaManager) EnsureSchema() error {
	return m.DB.AutoMigrate(schemaOrder()...)
}

// ResetSchema drops everything, recreates it, and seeds the fixed smoke-test
// identity. Destructive; operator entry point only. A failed drop is a
// configuration error and propagates, it is not retried.
func (m *SchemaManager) ResetSchema() error {
	tables := schemaOrder()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := m.DB.Migrator().DropTable(tables[i]); err != nil {
			return err
		}
	}
	if err := m.EnsureSchema(); err != nil {
		return err
	}
	seed := &model.User{
		Kind:     SeedUserKind,
		Name:     SeedUserName,
		Password: pkg.SHA256Hasher(SeedUserPassword, SeedUserSalt),
		Salt:     SeedUserSalt,
		Exp:      SeedUserExp,
	}
	return m.DB.Create(seed).Error
}
