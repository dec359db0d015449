package trainer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/fcetrainer/internal/exam"
	"github.com/abhisek/fcetrainer/internal/textmatch"
)

// Grade scores a submission against a stored task. It is a pure function
// of the task payload and the answers: grading the same input twice gives
// the same result. answers[i] is the learner's raw input for item i;
// missing entries count as blank.
//
// Transformation tasks are graded in sets, not singly; use GradeTransformationSet.
func Grade(task *exam.Task, answers []string) (*CheckResult, error) {
	switch task.Exercise {
	case exam.MultipleChoiceCloze:
		return gradeCloze(task, answers)
	case exam.OpenCloze:
		return gradeOpenCloze(task, answers)
	case exam.WordFormation:
		return gradeWordFormation(task, answers)
	case exam.ReadingMC:
		return gradeReading(task, answers)
	case exam.GappedText:
		return gradeGappedText(task, answers)
	case exam.MultipleMatching:
		return gradeMatching(task, answers)
	default:
		return nil, fmt.Errorf("cannot grade %s as a single task", task.Exercise)
	}
}

// answerAt returns the trimmed answer for item i, or "" when absent.
func answerAt(answers []string, i int) string {
	if i >= len(answers) {
		return ""
	}
	return strings.TrimSpace(answers[i])
}

// parseChoice turns a raw submission into an option index. Anything
// unparsable becomes -1, which never equals a stored correct index.
func parseChoice(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}

func newResult(task *exam.Task) *CheckResult {
	return &CheckResult{Exercise: task.Exercise, TaskIDs: []int{task.ID}}
}

func gradeCloze(task *exam.Task, answers []string) (*CheckResult, error) {
	p, err := task.Cloze()
	if err != nil {
		return nil, err
	}
	res := newResult(task)
	for i, gap := range p.Gaps {
		raw := answerAt(answers, i)
		choice := parseChoice(raw)
		d := Detail{
			Index:     i,
			UserValue: raw,
			Expected:  gap.Options[gap.Correct],
			Correct:   choice == gap.Correct,
			Attempted: raw != "",
		}
		if choice >= 0 && choice < len(gap.Options) {
			d.UserValue = gap.Options[choice]
		}
		if d.Correct {
			res.Score++
		}
		res.Details = append(res.Details, d)
	}
	res.Total = len(p.Gaps)
	return res, nil
}

func gradeOpenCloze(task *exam.Task, answers []string) (*CheckResult, error) {
	p, err := task.OpenCloze()
	if err != nil {
		return nil, err
	}
	res := newResult(task)
	gradeFreeText(res, p.Answers, answers)
	return res, nil
}

func gradeWordFormation(task *exam.Task, answers []string) (*CheckResult, error) {
	p, err := task.WordFormation()
	if err != nil {
		return nil, err
	}
	res := newResult(task)
	gradeFreeText(res, p.Answers, answers)
	return res, nil
}

// gradeFreeText scores each submitted word against the expected one with
// fuzzy matching, so minor spelling slips still count.
func gradeFreeText(res *CheckResult, expected, answers []string) {
	for i, want := range expected {
		raw := answerAt(answers, i)
		d := Detail{
			Index:     i,
			UserValue: raw,
			Expected:  want,
			Correct:   raw != "" && textmatch.Match(raw, want),
			Attempted: raw != "",
		}
		if d.Correct {
			res.Score++
		}
		res.Details = append(res.Details, d)
	}
	res.Total = len(expected)
}

func gradeReading(task *exam.Task, answers []string) (*CheckResult, error) {
	p, err := task.Reading()
	if err != nil {
		return nil, err
	}
	res := newResult(task)
	for i, q := range p.Questions {
		raw := answerAt(answers, i)
		choice := parseChoice(raw)
		d := Detail{
			Index:     i,
			UserValue: raw,
			Expected:  q.Options[q.Correct],
			Correct:   choice == q.Correct,
			Attempted: raw != "",
		}
		if choice >= 0 && choice < len(q.Options) {
			d.UserValue = q.Options[choice]
		}
		if d.Correct {
			res.Score++
		}
		res.Details = append(res.Details, d)
	}
	res.Total = len(p.Questions)
	return res, nil
}

// sentenceLetter renders a candidate-sentence index as its exam letter
// (0 = A .. 6 = G).
func sentenceLetter(idx int) string {
	if idx < 0 || idx > 6 {
		return ""
	}
	return string(rune('A' + idx))
}

func gradeGappedText(task *exam.Task, answers []string) (*CheckResult, error) {
	p, err := task.GappedText()
	if err != nil {
		return nil, err
	}
	res := newResult(task)
	for i, want := range p.Answers {
		raw := answerAt(answers, i)
		choice := parseChoice(raw)
		d := Detail{
			Index:     i,
			UserValue: sentenceLetter(choice),
			Expected:  sentenceLetter(want),
			Correct:   choice == want,
			Attempted: raw != "",
		}
		if d.UserValue == "" {
			d.UserValue = raw
		}
		if d.Correct {
			res.Score++
		}
		res.Details = append(res.Details, d)
	}
	res.Total = len(p.Answers)
	return res, nil
}

func gradeMatching(task *exam.Task, answers []string) (*CheckResult, error) {
	p, err := task.Matching()
	if err != nil {
		return nil, err
	}
	res := newResult(task)
	for i, q := range p.Questions {
		raw := answerAt(answers, i)
		label := strings.ToUpper(raw)
		d := Detail{
			Index:     i,
			UserValue: label,
			Expected:  q.Correct,
			Correct:   label != "" && label == q.Correct,
			Attempted: raw != "",
		}
		if d.Correct {
			res.Score++
		}
		res.Details = append(res.Details, d)
	}
	res.Total = len(p.Questions)
	return res, nil
}

// GradeTransformationSet scores a submitted set of key word transformations.
// Blank items are skipped entirely: the total counts attempted items only,
// so unanswered sentences don't drag the percentage down.
func GradeTransformationSet(tasks []*exam.Task, answers []string) (*CheckResult, error) {
	res := &CheckResult{Exercise: exam.Transformation}
	for i, task := range tasks {
		p, err := task.Transformation()
		if err != nil {
			return nil, err
		}
		res.TaskIDs = append(res.TaskIDs, task.ID)
		raw := answerAt(answers, i)
		d := Detail{
			Index:     i,
			UserValue: raw,
			Expected:  p.Answer,
			Attempted: raw != "",
		}
		if d.Attempted {
			res.Total++
			d.Correct = textmatch.Match(raw, p.Answer)
			if d.Correct {
				res.Score++
			}
		}
		res.Details = append(res.Details, d)
	}
	return res, nil
}
