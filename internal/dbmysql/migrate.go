package dbmysql

import (
	"fmt"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&DailyImage{},
		&Entry{},
		&Like{},
		&ContactRequest{},
		&Conversation{},
		&Message{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
