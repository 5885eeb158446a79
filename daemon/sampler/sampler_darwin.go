//go:build darwin

package sampler

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/cubestat/cubestat-go/daemon/platform"
)

// SubprocessSampler drives `powermetrics` as described in spec.md §4.1: a
// privileged telemetry process whose stdout is a concatenation of
// self-delimited plist-XML documents separated by a null byte. This
// generalizes the teacher's lib.Shell/ShellEx line-scanner (which splits on
// newlines) to a custom bufio.SplitFunc that splits on "\x00" instead.
type SubprocessSampler struct {
	log *zerolog.Logger
}

// NewSampler returns the darwin sampler.
func NewSampler(log *zerolog.Logger) *SubprocessSampler {
	return &SubprocessSampler{log: log}
}

// samplers is the fixed set of powermetrics plugins the sampler requests,
// matching spec.md §4.1's samplers={cpu_power, gpu_power, ane_power,
// network, disk}.
const samplers = "cpu_power,gpu_power,ane_power,network,disk"

// Run spawns powermetrics and invokes cb once per decoded document until
// ctx is canceled or the process exits. A process exit (expected or not)
// is fatal per spec.md §4.1 ("On process exit: terminate the program with
// a clear error") since there is no raw context to keep sampling with.
func (s *SubprocessSampler) Run(ctx context.Context, periodMS int, cb Callback) error {
	cmd := exec.CommandContext(ctx, "powermetrics",
		"-i", strconv.Itoa(periodMS),
		"--samplers", samplers,
		"--format", "plist",
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("sampler: stdoutpipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("sampler: start powermetrics: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(splitOnNull)

	for scanner.Scan() {
		doc := scanner.Bytes()
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}

		root, err := platform.ParsePlist(bytes.NewReader(doc))
		if err != nil {
			if s.log != nil {
				s.log.Warn().Err(err).Msg("sampler: discarding unparsable powermetrics document")
			}
			continue
		}

		now := float64(time.Now().UnixNano()) / 1e9
		cb(Sample{Timestamp: now, Raw: platform.NewPowerMetricsDoc(now, root)})
	}

	if err := scanner.Err(); err != nil {
		_ = cmd.Wait()
		return fmt.Errorf("sampler: reading powermetrics output: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("sampler: powermetrics exited: %w", err)
	}
	return fmt.Errorf("sampler: powermetrics exited unexpectedly")
}

// splitOnNull is a bufio.SplitFunc that delimits tokens on a single null
// byte, mirroring bufio.ScanLines' shape but for powermetrics' document
// separator instead of "\n".
func splitOnNull(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[0:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
