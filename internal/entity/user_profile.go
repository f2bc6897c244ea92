package entity

import (
	"sort"
	"time"
)

const (
	FitnessLevelBeginner     = "beginner"
	FitnessLevelIntermediate = "intermediate"
	FitnessLevelAdvanced     = "advanced"

	EngagementNew          = "new"
	EngagementRegular      = "regular"
	EngagementActive       = "active"
	EngagementHighlyActive = "highly_active"
)

const recentTopicsLimit = 5

type Preferences struct {
	FitnessLevel        string          `json:"fitness_level"`
	DietaryRestrictions []string        `json:"dietary_restrictions"`
	HealthGoals         []string        `json:"health_goals"`
	Notifications       map[string]bool `json:"notification_preferences"`
}

type FeedbackEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Topic     string    `json:"topic"`
	Feedback  string    `json:"feedback"`
}

type AchievedGoal struct {
	Goal       string    `json:"goal"`
	AchievedAt time.Time `json:"achieved_at"`
}

type InteractionHistory struct {
	TotalInteractions int             `json:"total_interactions"`
	TopicFrequency    map[string]int  `json:"topic_frequency"`
	LastTopics        []string        `json:"last_topics"`
	FeedbackHistory   []FeedbackEntry `json:"feedback_history"`
}

type ProgressMetrics struct {
	GoalsAchieved    []AchievedGoal `json:"goals_achieved"`
	ConsistencyScore float64        `json:"consistency_score"`
	EngagementLevel  string         `json:"engagement_level"`
	StreakDays       int            `json:"streak_days"`
}

// TopicCount is one entry of the frequent-topics ranking.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

type PersonalizationContext struct {
	FitnessLevel        string       `json:"fitness_level"`
	DietaryRestrictions []string     `json:"dietary_restrictions"`
	CurrentGoals        []string     `json:"current_goals"`
	InteractionLevel    string       `json:"interaction_level"`
	FrequentTopics      []TopicCount `json:"frequent_topics"`
}

// UserProfile is the only state that survives across conversation turns.
// All mutation goes through its update methods; callers serialize those
// per user id.
type UserProfile struct {
	UserID          string             `json:"user_id"`
	CreatedAt       time.Time          `json:"created_at"`
	LastInteraction time.Time          `json:"last_interaction"`
	Preferences     Preferences        `json:"preferences"`
	History         InteractionHistory `json:"interaction_history"`
	Progress        ProgressMetrics    `json:"progress_metrics"`

	topicOrder []string
}

func NewUserProfile(userID string, now time.Time) *UserProfile {
	return &UserProfile{
		UserID:          userID,
		CreatedAt:       now,
		LastInteraction: now,
		Preferences: Preferences{
			FitnessLevel:        FitnessLevelBeginner,
			DietaryRestrictions: []string{},
			HealthGoals:         []string{},
			Notifications:       map[string]bool{"daily_tips": true, "weekly_summary": true},
		},
		History: InteractionHistory{
			TopicFrequency:  map[string]int{},
			LastTopics:      []string{},
			FeedbackHistory: []FeedbackEntry{},
		},
		Progress: ProgressMetrics{
			GoalsAchieved:   []AchievedGoal{},
			EngagementLevel: EngagementNew,
		},
	}
}

// UpdateInteraction records one conversation turn: topic bookkeeping,
// optional feedback, then streak, engagement and consistency recomputation.
func (p *UserProfile) UpdateInteraction(topic string, feedback string, now time.Time) {
	previousDate := dateOf(p.LastInteraction)
	p.LastInteraction = now
	p.History.TotalInteractions++

	if _, seen := p.History.TopicFrequency[topic]; !seen {
		p.topicOrder = append(p.topicOrder, topic)
	}
	p.History.TopicFrequency[topic]++

	p.History.LastTopics = append(p.History.LastTopics, topic)
	if len(p.History.LastTopics) > recentTopicsLimit {
		p.History.LastTopics = p.History.LastTopics[1:]
	}

	if feedback != "" {
		p.History.FeedbackHistory = append(p.History.FeedbackHistory, FeedbackEntry{
			Timestamp: now,
			Topic:     topic,
			Feedback:  feedback,
		})
	}

	p.updateStreak(previousDate, now)
	p.updateEngagement(now)
	p.updateConsistency()
}

// updateStreak increments only on the first interaction of the next
// consecutive calendar day and resets to zero on any gap of two days or
// more. Same-day interactions leave the streak untouched.
func (p *UserProfile) updateStreak(previousDate time.Time, now time.Time) {
	switch gap := calendarDaysBetween(previousDate, now); {
	case gap == 0:
	case gap == 1:
		p.Progress.StreakDays++
	default:
		p.Progress.StreakDays = 0
	}
}

func (p *UserProfile) updateEngagement(now time.Time) {
	weeks := now.Sub(p.CreatedAt).Hours() / 24 / 7
	if weeks < 1 {
		weeks = 1
	}
	perWeek := float64(p.History.TotalInteractions) / weeks

	switch {
	case perWeek >= 10:
		p.Progress.EngagementLevel = EngagementHighlyActive
	case perWeek >= 5:
		p.Progress.EngagementLevel = EngagementActive
	case perWeek >= 2:
		p.Progress.EngagementLevel = EngagementRegular
	default:
		p.Progress.EngagementLevel = EngagementNew
	}
}

// updateConsistency recomputes the score from scratch: 60% streak maturity
// against a 30-day horizon, 40% goal achievement rate. Both factors are in
// [0,1], so the score is too.
func (p *UserProfile) updateConsistency() {
	streakFactor := float64(p.Progress.StreakDays) / 30
	if streakFactor > 1 {
		streakFactor = 1
	}

	totalGoals := len(p.Progress.GoalsAchieved) + len(p.Preferences.HealthGoals)
	if totalGoals < 1 {
		totalGoals = 1
	}
	achievementRate := float64(len(p.Progress.GoalsAchieved)) / float64(totalGoals)

	p.Progress.ConsistencyScore = streakFactor*0.6 + achievementRate*0.4
}

func (p *UserProfile) UpdatePreferences(level string, restrictions []string, notifications map[string]bool) {
	if level != "" {
		p.Preferences.FitnessLevel = level
	}
	if restrictions != nil {
		p.Preferences.DietaryRestrictions = restrictions
	}
	for key, value := range notifications {
		p.Preferences.Notifications[key] = value
	}
}

func (p *UserProfile) AddHealthGoal(goal string) {
	for _, existing := range p.Preferences.HealthGoals {
		if existing == goal {
			return
		}
	}
	p.Preferences.HealthGoals = append(p.Preferences.HealthGoals, goal)
}

func (p *UserProfile) MarkGoalAchieved(goal string, now time.Time) bool {
	for i, existing := range p.Preferences.HealthGoals {
		if existing == goal {
			p.Preferences.HealthGoals = append(p.Preferences.HealthGoals[:i], p.Preferences.HealthGoals[i+1:]...)
			p.Progress.GoalsAchieved = append(p.Progress.GoalsAchieved, AchievedGoal{Goal: goal, AchievedAt: now})
			return true
		}
	}
	return false
}

// GetPersonalizationContext snapshots what the response enhancer needs.
// Frequent topics are the top 3 by count, ties broken by the order topics
// were first mentioned.
func (p *UserProfile) GetPersonalizationContext() PersonalizationContext {
	frequent := make([]TopicCount, 0, len(p.topicOrder))
	for _, topic := range p.topicOrder {
		frequent = append(frequent, TopicCount{Topic: topic, Count: p.History.TopicFrequency[topic]})
	}
	sort.SliceStable(frequent, func(i, j int) bool {
		return frequent[i].Count > frequent[j].Count
	})
	if len(frequent) > 3 {
		frequent = frequent[:3]
	}

	return PersonalizationContext{
		FitnessLevel:        p.Preferences.FitnessLevel,
		DietaryRestrictions: append([]string{}, p.Preferences.DietaryRestrictions...),
		CurrentGoals:        append([]string{}, p.Preferences.HealthGoals...),
		InteractionLevel:    p.Progress.EngagementLevel,
		FrequentTopics:      frequent,
	}
}

func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// calendarDaysBetween counts calendar-date boundaries crossed between the
// two instants. Dates are re-anchored in UTC so a 23-hour DST day still
// counts as one day.
func calendarDaysBetween(from, to time.Time) int {
	fromYear, fromMonth, fromDay := from.Date()
	toYear, toMonth, toDay := to.Date()
	fromDate := time.Date(fromYear, fromMonth, fromDay, 0, 0, 0, 0, time.UTC)
	toDate := time.Date(toYear, toMonth, toDay, 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate) / (24 * time.Hour))
}
