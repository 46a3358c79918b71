// Package model holds the GORM table mappings of the persistence layer.
package model

// AllModels lists every model managed by the migrator, in dependency order.
func AllModels() []any {
	return []any{
		&ProfileModel{},
		&ContactModel{},
		&LikeModel{},
		&UnregisteredLikeModel{},
		&MatchModel{},
		&NotificationModel{},
	}
}
