package classifier

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTrainingSamples() []Sample {
	var samples []Sample
	for i := 0; i < 6; i++ {
		samples = append(samples, Sample{
			Code:  "func add(a, b int) int { return a + b }",
			Label: 0,
		})
		samples = append(samples, Sample{
			Code:  "goto cleanup; panic(recover()); eval(userInput)",
			Label: 1,
		})
	}
	return samples
}

func tempModelPath(t *testing.T) string {
	dir, err := ioutil.TempDir("", "classifier")
	require.NoError(t, err)
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return filepath.Join(dir, "model.json")
}

func TestTrainNotEnoughSamples(t *testing.T) {
	c := New(tempModelPath(t))
	_, err := c.Train(make([]Sample, 9))
	assert.Equal(t, ErrNotEnoughSamples, err)
}

func TestTrainAndPredict(t *testing.T) {
	c := New(tempModelPath(t))

	res, err := c.Train(buildTrainingSamples())
	require.NoError(t, err)
	assert.Equal(t, 12, res.SamplesUsed)
	assert.Equal(t, 1.0, res.TrainAccuracy)
	assert.Equal(t, 1.0, res.TestAccuracy)

	smelly, err := c.Predict("goto fail; panic(err)")
	require.NoError(t, err)
	assert.Equal(t, 1, smelly.Prediction)
	assert.True(t, smelly.Confidence > 0.5)

	clean, err := c.Predict("func sub(a, b int) int { return a - b }")
	require.NoError(t, err)
	assert.Equal(t, 0, clean.Prediction)
	assert.True(t, clean.Confidence > 0.5)
}

func TestPredictNotTrained(t *testing.T) {
	c := New(tempModelPath(t))
	require.NoError(t, c.Load())

	_, err := c.Predict("anything")
	assert.Equal(t, ErrNotTrained, err)

	info := c.Info()
	assert.False(t, info.Trained)
	assert.Nil(t, info.TrainedAt)
}

func TestSaveAndLoad(t *testing.T) {
	path := tempModelPath(t)

	trained := New(path)
	_, err := trained.Train(buildTrainingSamples())
	require.NoError(t, err)

	loaded := New(path)
	require.NoError(t, loaded.Load())

	info := loaded.Info()
	assert.True(t, info.Trained)
	assert.Equal(t, 12, info.SamplesUsed)
	assert.NotZero(t, info.VocabularySize)
	require.NotNil(t, info.TrainedAt)
	assert.False(t, info.TrainedAt.IsZero())

	pred, err := loaded.Predict("goto fail")
	require.NoError(t, err)
	assert.Equal(t, 1, pred.Prediction)
}

func TestSplitIsDeterministic(t *testing.T) {
	samples := buildTrainingSamples()

	train1, test1 := split(samples)
	train2, test2 := split(samples)

	assert.Equal(t, train1, train2)
	assert.Equal(t, test1, test2)
	assert.Len(t, test1, 3)
	assert.Len(t, train1, 9)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"foo_bar", "x1", "if"}, tokenize("Foo_Bar x1 123 if +"))
}
