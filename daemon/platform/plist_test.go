package platform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>elapsed_ns</key>
	<real>1000000000</real>
	<key>processor</key>
	<dict>
		<key>cpu_power</key>
		<real>1234.5</real>
		<key>clusters</key>
		<array>
			<dict>
				<key>name</key>
				<string>E-Cluster</string>
				<key>idle_ratio</key>
				<real>0.5</real>
				<key>cpus</key>
				<array>
					<dict>
						<key>cpu</key>
						<integer>0</integer>
						<key>idle_ratio</key>
						<real>0.25</real>
					</dict>
					<dict>
						<key>cpu</key>
						<integer>1</integer>
						<key>idle_ratio</key>
						<real>0.75</real>
					</dict>
				</array>
			</dict>
		</array>
	</dict>
	<key>network</key>
	<dict>
		<key>ibyte_rate</key>
		<real>512.0</real>
	</dict>
</dict>
</plist>
`

func TestParsePlistScalarsAndNesting(t *testing.T) {
	root, err := ParsePlist(strings.NewReader(samplePlist))
	require.NoError(t, err)

	assert.Equal(t, 1e9, root.Get("elapsed_ns").AsFloat())
	assert.Equal(t, 1234.5, root.Get("processor").Get("cpu_power").AsFloat())
	assert.Equal(t, 512.0, root.Get("network").Get("ibyte_rate").AsFloat())

	clusters := root.Get("processor").Get("clusters").Items()
	require.Len(t, clusters, 1)
	assert.Equal(t, "E-Cluster", clusters[0].Get("name").AsString())

	cpus := clusters[0].Get("cpus").Items()
	require.Len(t, cpus, 2)
	assert.Equal(t, 0.0, cpus[0].Get("cpu").AsFloat())
	assert.Equal(t, 0.25, cpus[0].Get("idle_ratio").AsFloat())
	assert.Equal(t, 1.0, cpus[1].Get("cpu").AsFloat())
}

func TestParsePlistMissingKeyIsZeroValue(t *testing.T) {
	root, err := ParsePlist(strings.NewReader(samplePlist))
	require.NoError(t, err)

	missing := root.Get("gpu").Get("freq_hz")
	assert.False(t, missing.Valid())
	assert.Equal(t, 0.0, missing.AsFloat())
	assert.Equal(t, "", missing.AsString())
}

func TestParsePlistEmptyDocumentErrors(t *testing.T) {
	_, err := ParsePlist(strings.NewReader(""))
	assert.Error(t, err)
}
