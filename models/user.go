package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const MaxUsernameLength = 30

type User struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Username    string    `json:"username" gorm:"uniqueIndex;not null;size:30"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Name        string    `json:"name" gorm:"size:50"`
	Password    string    `json:"-" gorm:"not null;size:255"`
	XP          uint      `json:"xp" gorm:"default:0"`
	Points      uint      `json:"points" gorm:"default:0"`
	Bottles     uint      `json:"bottles" gorm:"default:0"`
	OneTimeCode string    `json:"-" gorm:"size:6"`
	Verified    bool      `json:"verified" gorm:"default:false"`
	IsStaff     bool      `json:"is_staff" gorm:"default:false"`
	IsSuperuser bool      `json:"-" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Achievements  []UserAchievement `json:"achievements,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Items         []UserItem        `json:"items,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FilledBottles []FilledBottle    `json:"filled_bottles,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// UserOptions enumerates the optional account flags. They are validated by the
// constructors instead of being defaulted field-by-field at call sites.
type UserOptions struct {
	Name        string
	Staff       bool
	Superuser   bool
	PreVerified bool
}

var (
	ErrUsernameRequired = errors.New("must provide a username")
	ErrUsernameTooLong  = errors.New("username must be at most 30 characters")
	ErrEmailRequired    = errors.New("must provide an email")
	ErrStaffRequired    = errors.New("staff account must keep is_staff=true")
)

// NewUser builds a regular account. The email is normalized and the password is
// bcrypt-hashed before the record is returned; nothing is persisted here.
func NewUser(username, email, password string, opts UserOptions) (*User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(username) > MaxUsernameLength {
		return nil, ErrUsernameTooLong
	}
	if email == "" {
		return nil, ErrEmailRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:          uuid.New().String(),
		Username:    username,
		Email:       NormalizeEmail(email),
		Name:        opts.Name,
		Password:    string(hashed),
		OneTimeCode: GenerateOneTimeCode(),
		Verified:    opts.PreVerified,
		IsStaff:     opts.Staff,
		IsSuperuser: opts.Superuser,
	}, nil
}

// NewStaffUser builds an account with admin privileges. Options that try to
// strip the staff or superuser flags are rejected.
func NewStaffUser(username, email, password string, opts UserOptions) (*User, error) {
	if !opts.Staff && !opts.Superuser {
		opts.Staff = true
		opts.Superuser = true
	}
	if !opts.Staff || !opts.Superuser {
		return nil, ErrStaffRequired
	}
	opts.PreVerified = true
	return NewUser(username, email, password, opts)
}

// CheckPassword compares a plaintext candidate against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// Level is the continuous level derived from the user's XP.
func (u *User) Level() float64 {
	return Level(float64(u.XP))
}

// XPLeft is the XP accumulated past the threshold of the current level.
func (u *User) XPLeft() float64 {
	return XPLeft(float64(u.XP))
}
