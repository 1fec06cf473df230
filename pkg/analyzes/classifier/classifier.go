package classifier

import (
	"encoding/json"
	"io/ioutil"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultModelPath is used when ML_MODEL_PATH isn't configured.
	DefaultModelPath = "ml-model/code-smell-model.json"

	minTrainSamples = 10
	testFraction    = 0.2
	splitSeed       = 42
)

var (
	ErrNotEnoughSamples = errors.New("Not enough labeled data for training. Need at least 10 samples.")
	ErrNotTrained       = errors.New("Model not trained yet")
)

var tokenRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Sample is one labeled training example: Label is 0 for clean code
// and 1 for code with a smell.
type Sample struct {
	Code  string
	Label int
}

type TrainResult struct {
	TrainAccuracy float64 `json:"train_accuracy"`
	TestAccuracy  float64 `json:"test_accuracy"`
	SamplesUsed   int     `json:"samples_used"`
}

type Prediction struct {
	Prediction int     `json:"prediction"` // 0 for clean, 1 for code smell
	Confidence float64 `json:"confidence"`
}

type Info struct {
	Trained        bool       `json:"trained"`
	SamplesUsed    int        `json:"samples_used"`
	VocabularySize int        `json:"vocabulary_size"`
	TrainedAt      *time.Time `json:"trained_at"`
}

// model is a multinomial naive Bayes over code token frequencies,
// Laplace-smoothed. Indexes are the class labels.
type model struct {
	SamplesUsed int               `json:"samples_used"`
	TrainedAt   time.Time         `json:"trained_at"`
	ClassDocs   [2]int            `json:"class_docs"`
	TokenCounts [2]map[string]int `json:"token_counts"`
	TotalTokens [2]int            `json:"total_tokens"`
}

// Classifier persists its fitted model as JSON at path and is safe
// for concurrent use.
type Classifier struct {
	path string

	mu sync.RWMutex
	m  *model
}

func New(path string) *Classifier {
	if path == "" {
		path = DefaultModelPath
	}
	return &Classifier{
		path: path,
	}
}

// Load reads a previously saved model. A missing file isn't an error:
// the classifier just stays untrained.
func (c *Classifier) Load() error {
	data, err := ioutil.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "can't read model file %s", c.path)
	}

	var m model
	if err = json.Unmarshal(data, &m); err != nil {
		return errors.Wrapf(err, "can't parse model file %s", c.path)
	}
	for i := range m.TokenCounts {
		if m.TokenCounts[i] == nil {
			m.TokenCounts[i] = map[string]int{}
		}
	}

	c.mu.Lock()
	c.m = &m
	c.mu.Unlock()
	return nil
}

// Train fits the model on samples, reports accuracy on a deterministic
// 80/20 split and saves the fitted model to disk.
func (c *Classifier) Train(samples []Sample) (*TrainResult, error) {
	if len(samples) < minTrainSamples {
		return nil, ErrNotEnoughSamples
	}

	train, test := split(samples)
	m := fit(train)
	m.SamplesUsed = len(samples)
	m.TrainedAt = time.Now().UTC()

	res := &TrainResult{
		TrainAccuracy: m.accuracy(train),
		TestAccuracy:  m.accuracy(test),
		SamplesUsed:   len(samples),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.m = m
	if err := c.saveLocked(); err != nil {
		return nil, err
	}

	return res, nil
}

// Predict classifies code with the fitted model.
func (c *Classifier) Predict(code string) (*Prediction, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.m == nil {
		return nil, ErrNotTrained
	}
	pred, confidence := c.m.predict(code)
	return &Prediction{
		Prediction: pred,
		Confidence: confidence,
	}, nil
}

func (c *Classifier) Info() *Info {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.m == nil {
		return &Info{}
	}
	trainedAt := c.m.TrainedAt
	return &Info{
		Trained:        true,
		SamplesUsed:    c.m.SamplesUsed,
		VocabularySize: c.m.vocabularySize(),
		TrainedAt:      &trainedAt,
	}
}

func (c *Classifier) saveLocked() error {
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, "can't create model dir %s", dir)
		}
	}

	data, err := json.Marshal(c.m)
	if err != nil {
		return errors.Wrap(err, "can't marshal model")
	}
	if err = ioutil.WriteFile(c.path, data, 0644); err != nil {
		return errors.Wrapf(err, "can't write model file %s", c.path)
	}
	return nil
}

// split shuffles samples with a fixed seed so repeated training runs on
// the same data report the same accuracies.
func split(samples []Sample) (train, test []Sample) {
	perm := rand.New(rand.NewSource(splitSeed)).Perm(len(samples))
	nTest := int(math.Ceil(float64(len(samples)) * testFraction))

	test = make([]Sample, 0, nTest)
	train = make([]Sample, 0, len(samples)-nTest)
	for i, p := range perm {
		if i < nTest {
			test = append(test, samples[p])
		} else {
			train = append(train, samples[p])
		}
	}
	return train, test
}

func fit(samples []Sample) *model {
	m := &model{
		TokenCounts: [2]map[string]int{{}, {}},
	}
	for _, s := range samples {
		label := 0
		if s.Label != 0 {
			label = 1
		}
		m.ClassDocs[label]++
		for _, tok := range tokenize(s.Code) {
			m.TokenCounts[label][tok]++
			m.TotalTokens[label]++
		}
	}
	return m
}

func (m *model) predict(code string) (label int, confidence float64) {
	scores := m.logScores(code)
	if scores[1] > scores[0] {
		label = 1
	}

	// Softmax over the two log scores: the difference is <= 0 so the
	// confidence lands in [0.5, 1].
	confidence = 1 / (1 + math.Exp(scores[1-label]-scores[label]))
	return label, confidence
}

func (m *model) logScores(code string) [2]float64 {
	tokens := tokenize(code)
	vocab := m.vocabularySize()
	totalDocs := m.ClassDocs[0] + m.ClassDocs[1]

	var scores [2]float64
	for class := 0; class < 2; class++ {
		scores[class] = math.Log(float64(m.ClassDocs[class]+1) / float64(totalDocs+2))
		if vocab == 0 { // no vocabulary, priors only
			continue
		}
		for _, tok := range tokens {
			count := m.TokenCounts[class][tok]
			scores[class] += math.Log(float64(count+1) / float64(m.TotalTokens[class]+vocab))
		}
	}
	return scores
}

func (m *model) accuracy(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}

	correct := 0
	for _, s := range samples {
		label := 0
		if s.Label != 0 {
			label = 1
		}
		if pred, _ := m.predict(s.Code); pred == label {
			correct++
		}
	}
	return float64(correct) / float64(len(samples))
}

func (m *model) vocabularySize() int {
	vocab := len(m.TokenCounts[0])
	for tok := range m.TokenCounts[1] {
		if _, ok := m.TokenCounts[0][tok]; !ok {
			vocab++
		}
	}
	return vocab
}

func tokenize(code string) []string {
	return tokenRe.FindAllString(strings.ToLower(code), -1)
}
