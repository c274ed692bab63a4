package component

import "farm-defense/internal/ecs"

const CMilestones ecs.ComponentType = 13

// StoryPath records the wave-25 decision.
type StoryPath uint8

const (
	PathUndecided StoryPath = iota
	PathDefend
	PathStrike
)

// Milestones holds the player's one-shot flags. Each flips to true once and
// never back.
type Milestones struct {
	MerchantSkillGiven bool
	GoldTipShown       bool
	Path               StoryPath
}

func (Milestones) Type() ecs.ComponentType { return CMilestones }
