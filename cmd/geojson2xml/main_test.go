package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "eqnames_points.json")
	out := filepath.Join(dir, "eqnames.xml")

	input := `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[149.1287,-35.2835]},
		 "properties":{"Type":"capital","Country":"AU","FINAL_name":"Canberra","population":395790}},
		{"type":"Feature","geometry":{"type":"Point","coordinates":[115.8575,-31.9505]},
		 "properties":{"Type":"city","Country":"AU","FINAL_name":"Perth","population":2059484}}
	]}`
	require.NoError(t, os.WriteFile(in, []byte(input), 0644))

	require.NoError(t, run(Options{Input: in, Output: out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	want := `<seiscomp>
  <City category="C" countryID="AU">
    <name>Canberra</name>
    <population>395790</population>
    <latitude>-35.2835</latitude>
    <longitude>149.1287</longitude>
  </City>
  <City countryID="AU">
    <name>Perth</name>
    <population>2059484</population>
    <latitude>-31.9505</latitude>
    <longitude>115.8575</longitude>
  </City>
</seiscomp>
`
	assert.Equal(t, want, string(data))
}

func TestRunMissingProperty(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.xml")

	input := `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},
		 "properties":{"Type":"city","FINAL_name":"Nowhere","population":1}}
	]}`
	require.NoError(t, os.WriteFile(in, []byte(input), 0644))

	require.Error(t, run(Options{Input: in, Output: out}))

	_, err := os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunInvalidJSON(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"type":`), 0644))

	assert.Error(t, run(Options{Input: in}))
}
