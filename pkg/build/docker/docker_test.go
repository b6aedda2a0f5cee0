package docker

import (
	"strings"
	"testing"
)

func TestDrainBuildLog(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLog string
		wantErr string
	}{
		{
			name:    "stream lines collected",
			body:    `{"stream":"Step 1/3 : FROM python\n"}{"stream":"Step 2/3 : COPY . .\n"}`,
			wantLog: "Step 1/3 : FROM python\nStep 2/3 : COPY . .\n",
		},
		{
			name:    "in-band error keeps partial log",
			body:    `{"stream":"Step 1/3 : FROM python\n"}{"error":"executor failed"}`,
			wantLog: "Step 1/3 : FROM python\n",
			wantErr: "executor failed",
		},
		{
			name:    "empty stream",
			body:    ``,
			wantLog: "",
		},
		{
			name:    "malformed message",
			body:    `{"stream":"ok\n"}not json`,
			wantLog: "ok\n",
			wantErr: "reading build output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := drainBuildLog(strings.NewReader(tt.body))
			if log != tt.wantLog {
				t.Errorf("log = %q, want %q", log, tt.wantLog)
			}
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("err = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
