package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/sofatesting/Sofa-Driving-Test/config"
	"github.com/sofatesting/Sofa-Driving-Test/internal/model"
)

// ParseQuestions reads a question bank from a JSON file. The format is a
// flat array of {"question": ..., "answers": [{"text": ..., "correct": ...}]}.
func ParseQuestions(path string) ([]model.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open question file: %w", err)
	}

	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse question file %s: %w", path, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found in %s", path)
	}

	for i, q := range questions {
		if q.Prompt == "" {
			return nil, fmt.Errorf("question %d has an empty prompt", i+1)
		}
		if len(q.Choices) < 2 {
			return nil, fmt.Errorf("question %d needs at least two choices, has %d", i+1, len(q.Choices))
		}
	}
	warnOnBadAnswerKeys(questions)
	return questions, nil
}

// NewQuestionBank loads the configured question file, falling back to the
// built-in SOFA set when the file is missing or malformed.
func NewQuestionBank(cfg *config.Config) []model.Question {
	questions, err := ParseQuestions(cfg.Exam.QuestionsFile)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.Exam.QuestionsFile).Msg("Failed to load question file, using built-in questions")
		return DefaultQuestions()
	}
	log.Info().Int("count", len(questions)).Str("file", cfg.Exam.QuestionsFile).Msg("Question bank loaded")
	return questions
}

// warnOnBadAnswerKeys flags questions that do not have exactly one correct
// choice. The bank is still served; the exam is only as good as its data.
func warnOnBadAnswerKeys(questions []model.Question) {
	for i, q := range questions {
		correct := 0
		for _, c := range q.Choices {
			if c.Correct {
				correct++
			}
		}
		if correct != 1 {
			log.Warn().Int("question", i+1).Int("correctChoices", correct).Str("prompt", q.Prompt).Msg("Question does not have exactly one correct choice")
		}
	}
}

// DefaultQuestions is the built-in SOFA driver's written-test bank.
func DefaultQuestions() []model.Question {
	return []model.Question{
		{Prompt: "What is the standard blood alcohol content (BAC) limit for DUI under Japanese law?", Choices: []model.Choice{{Text: "0.03%", Correct: true}, {Text: "0.05%"}, {Text: "0.08%"}, {Text: "0.10%"}}},
		{Prompt: "Which side of the road should vehicles normally drive on in Japan?", Choices: []model.Choice{{Text: "Left", Correct: true}, {Text: "Right"}, {Text: "Center"}}},
		{Prompt: "What is the maximum speed limit for passenger vehicles on a national highway?", Choices: []model.Choice{{Text: "80 km/h"}, {Text: "60 km/h", Correct: true}, {Text: "100 km/h"}}},
		{Prompt: "How many meters before making a turn must you signal?", Choices: []model.Choice{{Text: "10 meters"}, {Text: "30 meters", Correct: true}, {Text: "50 meters"}}},
		{Prompt: "You may not park a vehicle within how many meters of a fire hydrant?", Choices: []model.Choice{{Text: "3 meters"}, {Text: "5 meters", Correct: true}, {Text: "10 meters"}}},
		{Prompt: "When is it permitted to use your horn?", Choices: []model.Choice{{Text: "To signal to a friend"}, {Text: "Only when required by law or to avoid danger", Correct: true}, {Text: "To show frustration in traffic"}}},
		{Prompt: "When approached by an emergency vehicle, what should you do?", Choices: []model.Choice{{Text: "Speed up to clear the way"}, {Text: "Pull to the left side of the road and stop", Correct: true}, {Text: "Continue at the same speed"}}},
		{Prompt: "What is the immediate penalty for refusing a chemical test if suspected of DUI?", Choices: []model.Choice{{Text: "A small fine"}, {Text: "Automatic revocation of driving privileges", Correct: true}, {Text: "A written warning"}}},
		{Prompt: "Within how many hours must you report an accident to your insurance company?", Choices: []model.Choice{{Text: "24 hours"}, {Text: "48 hours"}, {Text: "72 hours", Correct: true}}},
		{Prompt: "Where must you always give the right-of-way to pedestrians?", Choices: []model.Choice{{Text: "On highways"}, {Text: "At all crosswalks and sidewalks", Correct: true}, {Text: "Only on military installations"}}},
		{Prompt: "Can motorcycles use 'Bus Exclusive' lanes?", Choices: []model.Choice{{Text: "Yes, at any time", Correct: true}, {Text: "No, never"}, {Text: "Only during non-peak hours"}}},
		{Prompt: "When stopped on an expressway at night, what must be displayed?", Choices: []model.Choice{{Text: "Hazard lights only"}, {Text: "Hazard lights and a warning triangle/flare", Correct: true}, {Text: "Your vehicle's interior light"}}},
		{Prompt: "On base, what must you do when a school bus stops and has its warning lights flashing?", Choices: []model.Choice{{Text: "Proceed with caution"}, {Text: "Stop, regardless of your direction of travel", Correct: true}, {Text: "Stop only if you are behind the bus"}}},
		{Prompt: "What is the minimum required personal protective equipment for riding a motorcycle?", Choices: []model.Choice{{Text: "A helmet"}, {Text: "Helmet, gloves, long sleeves, long pants, and sturdy footwear", Correct: true}, {Text: "A reflective vest"}}},
		{Prompt: "What does the JCI sticker on a vehicle signify?", Choices: []model.Choice{{Text: "Proof of ownership"}, {Text: "The vehicle has passed a mandatory inspection", Correct: true}, {Text: "Proof of insurance"}}},
		{Prompt: "Is it legal to reverse (drive backwards) on an expressway?", Choices: []model.Choice{{Text: "Only in an emergency"}, {Text: "No, never", Correct: true}, {Text: "Yes, on the shoulder"}}},
		{Prompt: "What is a potential penalty for lending your vehicle to someone who is intoxicated?", Choices: []model.Choice{{Text: "A warning"}, {Text: "A fine up to 500,000 yen and/or up to 3 years confinement", Correct: true}, {Text: "A 30-day license suspension"}}},
		{Prompt: "Who is required to wear a seatbelt in a privately owned vehicle?", Choices: []model.Choice{{Text: "Only the driver"}, {Text: "Driver and front-seat passenger"}, {Text: "All occupants of the vehicle", Correct: true}}},
		{Prompt: "What does a solid yellow centerline on a road indicate?", Choices: []model.Choice{{Text: "Passing is permitted"}, {Text: "No passing from either side", Correct: true}, {Text: "A temporary lane marker"}}},
		{Prompt: "If your vehicle breaks down on an expressway, what is the first thing you should do?", Choices: []model.Choice{{Text: "Attempt to repair it in the lane"}, {Text: "Safely move the vehicle completely off the roadway", Correct: true}, {Text: "Call a friend for help"}}},
		{Prompt: "If you witness an accident, what is your primary responsibility?", Choices: []model.Choice{{Text: "Leave the scene immediately"}, {Text: "Render aid if safe and identify yourself to authorities", Correct: true}, {Text: "Take photos for social media"}}},
		{Prompt: "How often must most passenger vehicles undergo a Japanese Compulsory Insurance (JCI) inspection?", Choices: []model.Choice{{Text: "Every year"}, {Text: "Every two years", Correct: true}, {Text: "Every three years"}}},
		{Prompt: "Before driving a rental vehicle, you must possess what documents?", Choices: []model.Choice{{Text: "A valid credit card"}, {Text: "A valid SOFA license, rental agreement, and proper insurance", Correct: true}, {Text: "Your U.S. driver's license only"}}},
		{Prompt: "Is it permissible to park on the right side of a one-way street?", Choices: []model.Choice{{Text: "No, under no circumstances"}, {Text: "Yes, but only if specifically designated by signs", Correct: true}, {Text: "Yes, at any time"}}},
		{Prompt: "What documents must you produce upon request by a law enforcement officer?", Choices: []model.Choice{{Text: "Military ID only"}, {Text: "Driver's license, registration, and proof of insurance", Correct: true}, {Text: "Driver's license only"}}},
		{Prompt: "Stopping or parking is prohibited in which of the following areas?", Choices: []model.Choice{{Text: "Within a designated 'no parking' zone"}, {Text: "On a sidewalk or in a crosswalk", Correct: true}, {Text: "More than 1 meter from the curb"}}},
		{Prompt: "A 'No U-Turn' sign means:", Choices: []model.Choice{{Text: "You must make a right turn"}, {Text: "You are not permitted to reverse your direction of travel", Correct: true}, {Text: "U-turns are allowed for official vehicles only"}}},
		{Prompt: "What does a triangular sign with a red border typically indicate?", Choices: []model.Choice{{Text: "A regulatory command"}, {Text: "A warning of a hazard ahead", Correct: true}, {Text: "An informational message"}}},
		{Prompt: "An inverted red triangle sign with the characters '止まれ' means you must:", Choices: []model.Choice{{Text: "Yield"}, {Text: "Come to a complete stop", Correct: true}, {Text: "Proceed with caution"}}},
		{Prompt: "What does a circular sign with a red border and a white horizontal bar mean?", Choices: []model.Choice{{Text: "One Way"}, {Text: "Do Not Enter", Correct: true}, {Text: "Road Closed"}}},
	}
}
