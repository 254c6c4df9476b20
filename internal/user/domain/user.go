package domain

import (
	"errors"
	"strings"
	"time"

	"video_platform_service/pkg/encrypt"
	"video_platform_service/pkg/media"
	"video_platform_service/pkg/token"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchHistoryLimit 觀看紀錄最多保留筆數
const WatchHistoryLimit = 100

var (
	// ErrUserNotFound no user matches the query
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser userName or email already taken
	ErrDuplicateUser = errors.New("user with email or username already exists")
)

// SocialLinks channel links shown on the profile
type SocialLinks struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	X         string `bson:"x,omitempty" json:"x,omitempty"`
	Website   string `bson:"website,omitempty" json:"website,omitempty"`
}

// NotificationSettings which activities the user wants to be notified about
type NotificationSettings struct {
	EmailNotifications   bool `bson:"emailNotifications" json:"emailNotifications"`
	SubscriptionActivity bool `bson:"subscriptionActivity" json:"subscriptionActivity"`
	CommentActivity      bool `bson:"commentActivity" json:"commentActivity"`
}

// DefaultNotificationSettings everything on
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailNotifications:   true,
		SubscriptionActivity: true,
		CommentActivity:      true,
	}
}

// Allows report whether a notification of kind should reach this user
func (s NotificationSettings) Allows(kind string) bool {
	switch kind {
	case "SUBSCRIPTION":
		return s.SubscriptionActivity
	case "COMMENT", "REPLY":
		return s.CommentActivity
	default:
		return true
	}
}

// User account & channel owner
type User struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	UserName             string               `bson:"userName" json:"userName"`
	FullName             string               `bson:"fullName" json:"fullName"`
	Email                string               `bson:"email" json:"email"`
	Password             string               `bson:"password" json:"-"`
	Avatar               media.Asset          `bson:"avatar" json:"avatar"`
	CoverImage           media.Asset          `bson:"coverImage" json:"coverImage"`
	RefreshToken         string               `bson:"refreshToken,omitempty" json:"-"`
	WatchHistory         []primitive.ObjectID `bson:"watchHistory" json:"watchHistory"`
	IsVerified           bool                 `bson:"isVerified" json:"isVerified"`
	ChannelDescription   string               `bson:"channelDescription" json:"channelDescription"`
	ChannelTags          []string             `bson:"channelTags" json:"channelTags"`
	SocialLinks          SocialLinks          `bson:"socialLinks" json:"socialLinks"`
	NotificationSettings NotificationSettings `bson:"notificationSettings" json:"notificationSettings"`
	IsAdmin              bool                 `bson:"isAdmin" json:"isAdmin"`
	CreatedAt            time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeName userName & email are stored trimmed and lower case
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SetPassword check the strength and replace the stored hash
func (u *User) SetPassword(plain string) error {
	if err := encrypt.ValidatePasswordStrength(plain); err != nil {
		return err
	}
	hash, err := encrypt.HashPassword(plain)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

// IsPasswordMatch 密碼驗證
func (u *User) IsPasswordMatch(plain string) error {
	return encrypt.CheckPassword(u.Password, plain)
}

// PrepareForInsert normalize the unique fields and fill defaults before the first write.
// The password must already be hashed through SetPassword.
func (u *User) PrepareForInsert(now time.Time) {
	u.UserName = NormalizeName(u.UserName)
	u.Email = NormalizeName(u.Email)
	u.FullName = strings.TrimSpace(u.FullName)
	if u.WatchHistory == nil {
		u.WatchHistory = []primitive.ObjectID{}
	}
	if u.ChannelTags == nil {
		u.ChannelTags = []string{}
	}
	if u.NotificationSettings == (NotificationSettings{}) {
		u.NotificationSettings = DefaultNotificationSettings()
	}
	u.CreatedAt = now
	u.UpdatedAt = now
}

// Identity what the access token carries for this user
func (u *User) Identity() token.Identity {
	return token.Identity{
		UserID:   u.ID.Hex(),
		Email:    u.Email,
		UserName: u.UserName,
		FullName: u.FullName,
		IsAdmin:  u.IsAdmin,
	}
}

// Summary public subset of a user embedded in other documents
type Summary struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	UserName string             `bson:"userName" json:"userName"`
	FullName string             `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Avatar   media.Asset        `bson:"avatar" json:"avatar"`
}

// ChannelProfile public view of a channel, never exposes credentials, email, history or settings
type ChannelProfile struct {
	ID                 primitive.ObjectID `json:"_id"`
	UserName           string             `json:"userName"`
	FullName           string             `json:"fullName"`
	Avatar             media.Asset        `json:"avatar"`
	CoverImage         media.Asset        `json:"coverImage"`
	ChannelDescription string             `json:"channelDescription"`
	ChannelTags        []string           `json:"channelTags"`
	SocialLinks        SocialLinks        `json:"socialLinks"`
	IsAdmin            bool               `json:"isAdmin"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
	SubscribersCount   int64              `json:"subscribersCount"`
	VideosCount        int64              `json:"videosCount"`
	IsSubscribed       bool               `json:"isSubscribed"`
}

// ChannelProfile build the public profile
func (u *User) ChannelProfile() *ChannelProfile {
	tags := u.ChannelTags
	if tags == nil {
		tags = []string{}
	}
	return &ChannelProfile{
		ID:                 u.ID,
		UserName:           u.UserName,
		FullName:           u.FullName,
		Avatar:             u.Avatar,
		CoverImage:         u.CoverImage,
		ChannelDescription: u.ChannelDescription,
		ChannelTags:        tags,
		SocialLinks:        u.SocialLinks,
		IsAdmin:            u.IsAdmin,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// UserUpdate partial update, nil fields are left untouched
type UserUpdate struct {
	FullName             *string
	Email                *string
	Password             *string
	RefreshToken         *string
	Avatar               *media.Asset
	CoverImage           *media.Asset
	ChannelDescription   *string
	ChannelTags          *[]string
	SocialLinks          *SocialLinks
	NotificationSettings *NotificationSettings
}

// IsEmpty nothing to update
func (u UserUpdate) IsEmpty() bool {
	return u == UserUpdate{}
}

// NotificationSettingsPatch partial change of the notification settings
type NotificationSettingsPatch struct {
	EmailNotifications   *bool `json:"emailNotifications"`
	SubscriptionActivity *bool `json:"subscriptionActivity"`
	CommentActivity      *bool `json:"commentActivity"`
}

// Apply merge the patch into s
func (p NotificationSettingsPatch) Apply(s NotificationSettings) NotificationSettings {
	if p.EmailNotifications != nil {
		s.EmailNotifications = *p.EmailNotifications
	}
	if p.SubscriptionActivity != nil {
		s.SubscriptionActivity = *p.SubscriptionActivity
	}
	if p.CommentActivity != nil {
		s.CommentActivity = *p.CommentActivity
	}
	return s
}

// IsEmpty no setting given
func (p NotificationSettingsPatch) IsEmpty() bool {
	return p.EmailNotifications == nil && p.SubscriptionActivity == nil && p.CommentActivity == nil
}
