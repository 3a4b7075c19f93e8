// Package model holds the gorm persistence models of every resource.
package model

// All lists the models in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&VideoModel{},
		&CommentModel{},
		&LikeModel{},
		&SubscriptionModel{},
		&PlaylistModel{},
		&PlaylistVideoModel{},
		&TweetModel{},
		&WatchHistoryModel{},
	}
}
