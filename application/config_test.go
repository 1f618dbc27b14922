package application

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	*CommonConfig
	Height uint32 `toml:"height"`
}

var _ AppConfig = (*testConfig)(nil)

func (conf *testConfig) Load(file, encoding string) error {
	conf.CommonConfig = NewCommonConfig(file, encoding, nil)
	return conf.GetLoader().Decode(conf)
}

func (conf *testConfig) Save() error {
	return conf.GetLoader().Encode(conf)
}

func (conf *testConfig) GetPath() string {
	return conf.Path
}

func TestTomlLoaderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	conf := &testConfig{
		CommonConfig: NewCommonConfig(path, "toml", &LoggerConfig{Environment: "development"}),
		Height:       16,
	}
	require.NoError(t, conf.Save())

	loaded := &testConfig{}
	require.NoError(t, loaded.Load(path, "toml"))
	require.Equal(t, uint32(16), loaded.Height)
	require.NotNil(t, loaded.Logger)
	require.Equal(t, "development", loaded.Logger.Environment)
}

func TestSaveRefusesToClobber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	conf := &testConfig{
		CommonConfig: NewCommonConfig(path, "toml", nil),
		Height:       4,
	}
	require.NoError(t, conf.Save())
	require.Error(t, conf.Save())
}

func TestUnknownEncodingFallsBackToToml(t *testing.T) {
	conf := NewCommonConfig("x", "xml", nil)
	require.IsType(t, &TomlLoader{}, conf.GetLoader())
}
