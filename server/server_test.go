package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psv/model"
)

func testServer() *Server {
	return NewServer(websocket.Upgrader{})
}

func validInput() model.SizingInput {
	return model.SizingInput{
		Vessel: model.VesselGeometry{
			HeadType:        model.HeadASMEFD,
			OuterDiameter:   3.0,
			ShellHeight:     6.0,
			ShellThickness:  0.01,
			BottomElevation: 1.0,
		},
		Fill: model.FillState{Volume: 26},
		Fluid: model.FluidProperties{
			K:               1.3,
			Hvap:            2.5e5,
			MolecularWeight: 44,
			Z:               0.9,
			Temperature:     350,
		},
		Relief: model.ReliefLineConfig{
			MAWP:                150,
			AccumulationPercent: 21,
			Backpressure:        10,
			Atmosphere:          14.7,
			Kd:                  0.975,
			Kb:                  1,
			Kc:                  1,
			Ke:                  1,
		},
	}
}

func postCalculate(t *testing.T, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/calculate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleCalculate(t *testing.T) {
	body, err := json.Marshal(validInput())
	require.NoError(t, err)

	rec := postCalculate(t, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res model.SizingResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, model.MethodAPI520, res.Method)
	assert.Equal(t, model.FlowCritical, res.FlowRegime)
	require.NotNil(t, res.SelectedOrifice)
	assert.Equal(t, "L", res.SelectedOrifice.Letter)
}

func TestHandleCalculate_DefaultAtmosphere(t *testing.T) {
	in := validInput()
	in.Relief.Atmosphere = 0 // omitted by the caller, filled from config
	body, err := json.Marshal(in)
	require.NoError(t, err)

	rec := postCalculate(t, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.SizingResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	// 150·1.21 + 14.7 from the configured default.
	assert.InDelta(t, 196.2, res.RelievingPressure, 1e-9)
}

func TestHandleCalculate_BadJSON(t *testing.T) {
	rec := postCalculate(t, []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}

func TestHandleCalculate_InvalidInput(t *testing.T) {
	in := validInput()
	in.Fluid.K = 1.0
	body, err := json.Marshal(in)
	require.NoError(t, err)

	rec := postCalculate(t, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var res map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Contains(t, res["error"], "k")
}

func TestHandleCalculate_GeometryError(t *testing.T) {
	in := validInput()
	in.Fill.Volume = 1e6
	body, err := json.Marshal(in)
	require.NoError(t, err)

	rec := postCalculate(t, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHubDispatch_Size(t *testing.T) {
	content, err := json.Marshal(validInput())
	require.NoError(t, err)

	hub := NewHub(nil)
	reply := hub.dispatch(model.Msg{Type: "size", Content: string(content)})
	require.Equal(t, "sized", reply.Type)

	var res model.SizingResult
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &res))
	require.NotNil(t, res.SelectedOrifice)
	assert.Equal(t, "L", res.SelectedOrifice.Letter)
}

func TestHubDispatch_BadContent(t *testing.T) {
	hub := NewHub(nil)
	reply := hub.dispatch(model.Msg{Type: "size", Content: "{not json"})
	assert.Equal(t, "error", reply.Type)
	assert.True(t, strings.HasPrefix(reply.Content, "invalid sizing input"))
}

func TestHubDispatch_UnknownType(t *testing.T) {
	hub := NewHub(nil)
	reply := hub.dispatch(model.Msg{Type: "bogus", Content: ""})
	assert.Equal(t, "error", reply.Type)
	assert.Contains(t, reply.Content, "bogus")
}
