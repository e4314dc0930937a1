// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL queries and map database rows back to
// Go values; the struct tags tell it about column types, constraints, and
// relationships.
//
// The data model is a golf scorecard's persistence view:
//   - Players carry a handicap index and join Rounds
//   - Rounds are played at a Course under one scoring format
//   - Scores record gross strokes per player per hole
//
// Nothing here computes anything. Handlers load these rows, assemble them into
// a scoring.Round, and let the scoring engine derive totals, points, match
// status, and payouts. Relationships are expressed as id references in flat
// tables — a score points at its round and player by UUID; no row owns a
// back-pointer to anything that references it.
//
// Team assignments, press logs, and tracking sets are structured types in the
// engine but persist here as compact text columns (see scoring's encoders).
// That keeps a round's configuration reconstructable from a single row without
// a tangle of join tables for what is, at most, a two-team split.
package models

import (
	"time"

	// uuid provides the primary keys. UUIDs are safe to generate client-side
	// and reveal nothing about record counts.
	"github.com/google/uuid"
)

// --- Enums ---
// Go simulates enums with a named string type plus constants: type safety in
// code, human-readable values in the database.

// UserRole is a user's global permission level.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"   // Full access: manage users, courses, everything
	UserRoleManager UserRole = "manager" // Can create courses and manage rounds
	UserRoleUser    UserRole = "user"    // Regular golfer: plays rounds, records scores
)

// RoundStatus tracks the lifecycle of a round. A round is never partially
// deleted: it is discarded whole or marked completed once every player has a
// gross score on all 18 holes.
type RoundStatus string

const (
	RoundStatusActive    RoundStatus = "active"
	RoundStatusCompleted RoundStatus = "completed"
)

// --- Models ---

// User is a registered account, created automatically the first time a
// Clerk-authenticated request hits the API. Distinct from Player: a User is
// who logs in; a Player is who appears on scorecards. A weekend group often
// has one User entering scores for four Players.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClerkID     *string   `gorm:"uniqueIndex:idx_users_clerk_id"` // Clerk's user ID; pointer = nullable for legacy rows
	DisplayName string    `gorm:"not null"`
	Email       string    `gorm:"uniqueIndex;not null"`
	Role        UserRole  `gorm:"type:user_role;not null;default:'user'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Player is a golfer who can appear in rounds.
// HandicapIndex is the WHS-style index (e.g. 14.2): fractional, and above 18
// for higher-handicap players. It may be updated between rounds but not while
// one is in progress — the handlers enforce that.
type Player struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"not null"`
	HandicapIndex float64   `gorm:"type:decimal(4,1);not null;default:0"`
	DeviceOwner   bool      `gorm:"not null;default:false"` // marks the golfer whose device runs the scorecard
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Course is a golf course. Slope and rating are informational; the holes
// carry what scoring actually needs.
type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Slope     int       `gorm:"not null;default:113"`                  // USGA slope rating (55-155)
	Rating    float64   `gorm:"type:decimal(4,1);not null;default:72"` // USGA course rating
	CreatedAt time.Time
	UpdatedAt time.Time
	Holes     []Hole `gorm:"foreignKey:CourseID"` // One-to-many: the 18 holes
}

// Hole stores per-hole details for a course.
// StrokeIndex is the handicap allocation rank: 1 = hardest hole (receives the
// first handicap stroke), 18 = easiest. The engine's allocator depends on the
// indexes forming a 1..18 ranking across the course's holes.
type Hole struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_course_hole"` // Combined unique index with HoleNumber
	HoleNumber  int           `gorm:"not null;uniqueIndex:idx_course_hole"`           // 1-18, unique per course
	Par         int           `gorm:"not null"`
	StrokeIndex int           `gorm:"not null"`
	Distances   []TeeDistance `gorm:"foreignKey:HoleID"` // Optional per-tee-color yardages
}

// TeeDistance is one tee color's yardage on one hole. Optional — plenty of
// rounds are scored without yardage data.
type TeeDistance struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HoleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_hole_color"`
	Color  string    `gorm:"not null;uniqueIndex:idx_hole_color"` // e.g. "blue", "white", "red"
	Yards  int       `gorm:"not null"`
}

// Round is one game of golf. The format tag is fixed at creation; every
// derived computation the engine offers is conditioned on it.
//
// Teams, Presses, and Tracking hold the compact string encodings
// ("team1:id1,id2|team2:id3,id4" and friends) parsed by the scoring package
// when the round is assembled for the engine. PotPerPlayer, Carryover, and
// SkinValue matter only to skins rounds; exactly one of the two payout modes
// is active, selected by whether PotPerPlayer is populated.
type Round struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourseID     *uuid.UUID  `gorm:"type:uuid"` // Nullable: a round can be scored without course data (degraded net path)
	Course       *Course     `gorm:"foreignKey:CourseID"`
	Format       string      `gorm:"not null"` // "stroke", "stableford", "bestball", "bestball_matchplay", "nassau", "skins", or "scramble"
	TeeColor     *string     // Optional per-round tee override
	Teams        string      `gorm:"not null;default:''"`    // Encoded team assignment (team formats only)
	Presses      string      `gorm:"not null;default:''"`    // Encoded Nassau press log, in the order presses were added
	Tracking     string      `gorm:"not null;default:''"`    // Encoded shot-tracking opt-in set; passed through, never scored
	PotPerPlayer *float64    `gorm:"type:decimal(8,2)"`      // Skins: each player's pot contribution; set = pot payout mode
	Carryover    bool        `gorm:"not null;default:false"` // Skins: tied holes carry their skins forward
	SkinValue    *float64    `gorm:"type:decimal(8,2)"`      // Skins legacy mode: fixed dollar value per skin
	Status       RoundStatus `gorm:"type:round_status;not null;default:'active'"`
	CreatedBy    uuid.UUID   `gorm:"type:uuid;not null"` // Which user started the round
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Players      []RoundPlayer `gorm:"foreignKey:RoundID"`
	Scores       []Score       `gorm:"foreignKey:RoundID"`
}

// RoundPlayer places a Player in a Round. Position preserves the order
// players were added in — the engine's player list is ordered. The unique
// index stops a player from joining the same round twice.
type RoundPlayer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoundID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_round_player"`
	PlayerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_round_player"`
	Player   Player    `gorm:"foreignKey:PlayerID"`
	Position int       `gorm:"not null;default:0"`
}

// Score records the gross strokes a player took on one hole of a round —
// one cell of the engine's ledger. The composite unique index makes the
// upsert idempotent: re-entering a score overwrites, never duplicates.
// Net scores are not stored; the engine derives them on demand.
type Score struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoundID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_round_hole_player"`
	HoleNumber   int       `gorm:"not null;uniqueIndex:idx_round_hole_player"` // 1-18
	PlayerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_round_hole_player"`
	GrossStrokes int       `gorm:"not null"`
	EnteredBy    uuid.UUID `gorm:"type:uuid;not null"` // Which user entered it — one phone usually scores for the whole group
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}
