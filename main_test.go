package main

import (
	"bytes"
	"os"
	"os/exec"
	"testing"
)

// TestCLI_WeekdayWindow exercises the built binary end to end
func TestCLI_WeekdayWindow(t *testing.T) {
	// Skip if not in integration test mode
	if os.Getenv("INTEGRATION_TEST") != "1" {
		t.Skip("Skipping integration test")
	}

	// Build the binary
	cmd := exec.Command("go", "build", "-o", "weekbound-test")
	err := cmd.Run()
	if err != nil {
		t.Fatalf("Failed to build binary: %v", err)
	}
	defer func() {
		_ = os.Remove("weekbound-test")
	}()

	tests := []struct {
		name     string
		args     []string
		env      map[string]string
		wantErr  bool
		contains string
	}{
		{
			name:     "UTC-only window",
			args:     []string{"-weekday", "Sunday", "-at", "2024-06-01T12:00:00Z", "-utc"},
			env:      map[string]string{},
			wantErr:  false,
			contains: "previous:",
		},
		{
			name:     "JSON output",
			args:     []string{"-weekday", "Sunday", "-at", "2024-06-01T12:00:00Z", "-utc", "-json"},
			env:      map[string]string{},
			wantErr:  false,
			contains: `"weekday": "Sunday"`,
		},
		{
			name: "configured timezone",
			args: []string{"-weekday", "mon", "-at", "2024-06-01T12:00:00Z", "-verbose"},
			env: map[string]string{
				"WEEKBOUND_TIMEZONE": "Asia/Tokyo",
			},
			wantErr:  false,
			contains: "Asia/Tokyo",
		},
		{
			name:    "invalid weekday",
			args:    []string{"-weekday", "Someday"},
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name:    "invalid reference instant",
			args:    []string{"-weekday", "Sunday", "-at", "not-a-time"},
			env:     map[string]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command("./weekbound-test", tt.args...)

			// Set environment variables
			cmd.Env = os.Environ()
			for k, v := range tt.env {
				cmd.Env = append(cmd.Env, k+"="+v)
			}

			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error: %v, got: %v", tt.wantErr, err)
				t.Logf("stdout: %s", stdout.String())
				t.Logf("stderr: %s", stderr.String())
			}

			if tt.contains != "" && !bytes.Contains(stdout.Bytes(), []byte(tt.contains)) {
				t.Errorf("Expected output to contain %q, got: %s", tt.contains, stdout.String())
			}
		})
	}
}
