package course

import (
	"errors"
	"math"
)

type TopicType string

const (
	TopicReading    TopicType = "reading"
	TopicEvaluation TopicType = "evaluation"
)

var ErrTopicNotFound = errors.New("topic not found in course")

// Topic is one unit of study material inside a module.
type Topic struct {
	ID        int
	Title     string
	Type      TopicType
	Completed bool
}

// Module groups topics under a course.
type Module struct {
	ID     int
	Title  string
	Topics []Topic
}

// Course is a training course tied to a CNSF cédula.
type Course struct {
	ID      string
	Cedula  string
	Title   string
	Modules []Module
}

// CompletedTopics counts the completed topics in a module.
func (m *Module) CompletedTopics() int {
	n := 0
	for _, t := range m.Topics {
		if t.Completed {
			n++
		}
	}
	return n
}

// TopicCount is the total number of topics across all modules.
func (c *Course) TopicCount() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Topics)
	}
	return n
}

// Progress is the rounded percentage of completed topics.
func (c *Course) Progress() int {
	total := c.TopicCount()
	if total == 0 {
		return 0
	}
	done := 0
	for i := range c.Modules {
		done += c.Modules[i].CompletedTopics()
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// Topic finds a topic by ID across all modules.
func (c *Course) Topic(topicID int) *Topic {
	for i := range c.Modules {
		for j := range c.Modules[i].Topics {
			if c.Modules[i].Topics[j].ID == topicID {
				return &c.Modules[i].Topics[j]
			}
		}
	}
	return nil
}

// MarkCompleted flags a topic as completed.
func (c *Course) MarkCompleted(topicID int) error {
	t := c.Topic(topicID)
	if t == nil {
		return ErrTopicNotFound
	}
	t.Completed = true
	return nil
}

// ApplyCompletions overlays a set of completed topic IDs, typically
// loaded from the store for the acting user.
func (c *Course) ApplyCompletions(topicIDs []int) {
	for _, id := range topicIDs {
		if t := c.Topic(id); t != nil {
			t.Completed = true
		}
	}
}
