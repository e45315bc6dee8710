package constants

const (
	RoleUser      = "USER"
	RoleModerator = "MODERATOR"
	RoleAdmin     = "ADMIN"

	LikeTypeLike    = "LIKE"
	LikeTypeDislike = "DISLIKE"
)

const (
	UserTableName          = "users"
	CategoryTableName      = "categories"
	VideoTableName         = "videos"
	LikeTableName          = "likes"
	CommentTableName       = "comments"
	PlaylistTableName      = "playlists"
	PlaylistVideoTableName = "playlist_videos"
	SubscriptionTableName  = "subscriptions"
)

const (
	// JWT
	IdentityKey    = "id"
	CookieName     = "jwt"
	CurrentUser    = "current_user"
	LoginUserKey   = "login_user"
	AuthStatusKey  = "auth_status"
	MinPasswordLen = 6

	// pagination
	HomePageSize       = 50
	LibraryPageSize    = 50
	SearchDefaultLimit = 20
	SearchMaxLimit     = 50
	// SearchIndexMaxHits 为 elastic 单次返回 id 的上限
	SearchIndexMaxHits = 1000
	PopularDefaultSize = 10
	RelatedVideoSize   = 10

	MaxTitleLen       = 100
	MaxDescriptionLen = 1000
	MaxCommentLen     = 1000
	MaxSearchQueryLen = 100

	VideoObjectDir     = "videos"
	ThumbnailObjectDir = "thumbnails"

	// redis
	CategoryCacheKey = "videohub:categories"
	VisitZSetKey     = "videohub:visit"
	VideoLockPrefix  = "videohub:lock:video:"
)

var Roles = []string{RoleUser, RoleModerator, RoleAdmin}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
