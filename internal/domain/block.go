package domain

import "time"

// Block represents an admin-defined interval during which no slot may be booked
// Blocks are advisory constraints on future availability only: creating a block
// does not touch existing bookings
type Block struct {
	ID        int64
	StartAt   time.Time
	EndAt     time.Time
	Reason    *string
	CreatedAt time.Time
}

// Covers returns true if the instant falls inside the block
// The interval is half-open [StartAt, EndAt): a slot equal to StartAt is
// blocked, a slot equal to EndAt is free, so adjacent blocks chain without gaps
func (k *Block) Covers(t time.Time) bool {
	return !t.Before(k.StartAt) && t.Before(k.EndAt)
}

// IsValid returns true if the block interval is well-formed
func (k *Block) IsValid() bool {
	return k.EndAt.After(k.StartAt)
}
