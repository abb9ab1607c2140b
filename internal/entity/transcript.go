package entity

import (
	"time"

	"github.com/biskitsx/ZideQuest-Backend/pkg/enum"
)

type TranscriptBucket string

var (
	BucketUniversity = enum.New(TranscriptBucket("university"))
	BucketMorality   = enum.New(TranscriptBucket("morality"))
	BucketThinking   = enum.New(TranscriptBucket("thinking"))
	BucketRelation   = enum.New(TranscriptBucket("relation"))
	BucketHealth     = enum.New(TranscriptBucket("health"))
	BucketSociety    = enum.New(TranscriptBucket("society"))
)

// EmpowermentBuckets are the sub-buckets reported under the empowerment
// section of a user's activity transcript.
var EmpowermentBuckets = []TranscriptBucket{
	BucketMorality, BucketThinking, BucketRelation, BucketHealth,
}

// BucketForCategory classifies an activity category code into a transcript
// bucket. Unknown codes fall back to society.
func BucketForCategory(code string) TranscriptBucket {
	switch code {
	case "1":
		return BucketUniversity
	case "2.1":
		return BucketMorality
	case "2.2":
		return BucketThinking
	case "2.3":
		return BucketRelation
	case "2.4":
		return BucketHealth
	default:
		return BucketSociety
	}
}

// Transcript accumulates activity hours per user and bucket. Counters are only
// ever incremented, once per participant per quest completion.
type Transcript struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Bucket TranscriptBucket `gorm:"primaryKey"`

	Hours float64
	Count uint64

	UpdatedAt time.Time
}
