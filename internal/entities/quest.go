package entities

import "fmt"

// Quest is a task with an experience reward decided on completion
type Quest struct {
	Description      string `json:"description"`
	Completed        bool   `json:"completed"`
	RewardExperience int    `json:"reward_experience"`
}

// NewQuest creates an incomplete quest
func NewQuest(description string) *Quest {
	return &Quest{Description: description}
}

// Complete marks the quest done and records the reward
func (q *Quest) Complete(reward int) {
	q.Completed = true
	q.RewardExperience = reward
}

func (q *Quest) String() string {
	status := "Incomplete"
	if q.Completed {
		status = "Completed"
	}
	return fmt.Sprintf("Quest: %s (%s)", q.Description, status)
}
