package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pefman/dicebox/internal/models"
)

func TestClientDice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/dice", r.URL.Path)
		json.NewEncoder(w).Encode(models.TableState{Values: []int{1, 3, 5}, Sum: 9})
	}))
	defer srv.Close()

	state, err := NewClient(srv.URL).Dice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, state.Values)
	assert.Equal(t, 9, state.Sum)
}

func TestClientSetValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/dice/values", r.URL.Path)
		var req models.SetValuesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []int{2, 4, 6}, req.Values)
		json.NewEncoder(w).Encode(models.TableState{Values: req.Values, Sum: 12})
	}))
	defer srv.Close()

	state, err := NewClient(srv.URL).SetValues(context.Background(), []int{2, 4, 6})
	require.NoError(t, err)
	assert.Equal(t, 12, state.Sum)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "die is already rolling"})
	}))
	defer srv.Close()

	err := NewClient(srv.URL).RollAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already rolling")
}

func TestClientRollOnePath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL).RollOne(context.Background(), 2))
	assert.Equal(t, "/api/roll/2", gotPath)
}
