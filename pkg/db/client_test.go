package db

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testModel struct {
	ID   int
	Name string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&testModel{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func TestWithTx_CommitsAndRollbacks(t *testing.T) {
	db := newTestDB(t)
	client := &Client{conn: db}

	ctx := context.Background()
	if err := client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(&testModel{Name: "committed"}).Error
	}); err != nil {
		t.Fatalf("WithTx commit failed: %v", err)
	}

	var committed int64
	if err := db.Model(&testModel{}).Where("name = ?", "committed").Count(&committed).Error; err != nil {
		t.Fatalf("count committed rows: %v", err)
	}
	if committed != 1 {
		t.Fatalf("expected 1 committed row, got %d", committed)
	}

	boom := errors.New("boom")
	if err := client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&testModel{Name: "rolled-back"}).Error; err != nil {
			return err
		}
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected fn error to propagate, got %v", err)
	}

	var rolledBack int64
	if err := db.Model(&testModel{}).Where("name = ?", "rolled-back").Count(&rolledBack).Error; err != nil {
		t.Fatalf("count rolled back rows: %v", err)
	}
	if rolledBack != 0 {
		t.Fatalf("expected rollback to discard row, found %d", rolledBack)
	}
}

func TestPingAndClose(t *testing.T) {
	db := newTestDB(t)
	client := &Client{conn: db}

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}
