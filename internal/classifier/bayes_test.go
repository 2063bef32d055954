package classifier

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jbrukh/bayesian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asentar-dev/asentar/internal/common"
	"github.com/asentar-dev/asentar/internal/model"
)

// writeModel trains a tiny fixture model and serializes it the way a real
// deployment would ship one.
func writeModel(t *testing.T) string {
	t.Helper()

	cl := bayesian.NewClassifier(
		bayesian.Class("51101"),
		bayesian.Class("11102"),
		bayesian.Class("41101"),
	)
	cl.Learn([]string{"pago", "de", "sueldos"}, "51101")
	cl.Learn([]string{"pago", "de", "alquiler"}, "51101")
	cl.Learn([]string{"deposito", "en", "banco"}, "11102")
	cl.Learn([]string{"cobro", "en", "cuenta"}, "11102")
	cl.Learn([]string{"venta", "de", "mercaderia"}, "41101")

	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, cl.WriteToFile(path))
	return path
}

func TestNewBayesClient_RequiresPath(t *testing.T) {
	_, err := newBayesClient(Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestBayesClient_MissingModelIsUnavailable(t *testing.T) {
	client, err := newBayesClient(Config{ModelPath: filepath.Join(t.TempDir(), "missing.gob")})
	require.NoError(t, err)

	_, err = client.Classify(context.Background(), "pago de sueldos")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrModelUnavailable)
}

func TestBayesClient_LoadFailureIsNotSticky(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.gob")
	client, err := newBayesClient(Config{ModelPath: path})
	require.NoError(t, err)

	_, err = client.Classify(context.Background(), "pago de sueldos")
	require.ErrorIs(t, err, common.ErrModelUnavailable)

	// The model appears between calls, as when a deployment copies it in
	// after the process started.
	modelPath := writeModel(t)
	b := client.(*bayesClient)
	b.path = modelPath

	scores, err := client.Classify(context.Background(), "pago de sueldos")
	require.NoError(t, err)
	assert.Len(t, scores, 3)
}

func TestBayesClient_ScoresAllKnownLabels(t *testing.T) {
	client, err := newBayesClient(Config{ModelPath: writeModel(t)})
	require.NoError(t, err)

	scores, err := client.Classify(context.Background(), "Pago de sueldos")
	require.NoError(t, err)

	require.Len(t, scores, 3)
	codes := make(map[model.AccountCode]bool, len(scores))
	for _, s := range scores {
		codes[s.Code] = true
		assert.GreaterOrEqual(t, s.Value, 0.0)
		assert.LessOrEqual(t, s.Value, 1.0)
	}
	assert.True(t, codes["51101"])
	assert.True(t, codes["11102"])
	assert.True(t, codes["41101"])

	// The trained expense class should dominate for a wage payment.
	top := scores[0]
	for _, s := range scores[1:] {
		if s.Value > top.Value {
			top = s
		}
	}
	assert.Equal(t, model.AccountCode("51101"), top.Code)
}

func TestBayesClient_EnumerationOrderIsStable(t *testing.T) {
	client, err := newBayesClient(Config{ModelPath: writeModel(t)})
	require.NoError(t, err)

	first, err := client.Classify(context.Background(), "cobro en cuenta")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := client.Classify(context.Background(), "cobro en cuenta")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBayesClient_ConcurrentFirstUseLoadsOnce(t *testing.T) {
	client, err := newBayesClient(Config{ModelPath: writeModel(t)})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = client.Classify(context.Background(), "venta de mercaderia")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	b := client.(*bayesClient)
	require.NotNil(t, b.cl)
}

func TestBayesClient_Warm(t *testing.T) {
	client, err := newBayesClient(Config{ModelPath: writeModel(t)})
	require.NoError(t, err)

	w, ok := client.(warmer)
	require.True(t, ok)
	require.NoError(t, w.warm(context.Background()))

	b := client.(*bayesClient)
	assert.NotNil(t, b.cl)
}
