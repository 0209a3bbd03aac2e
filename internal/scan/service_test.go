package scan_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codetidy/bracefix/internal/balance"
	"github.com/codetidy/bracefix/internal/report"
	"github.com/codetidy/bracefix/internal/scan"
)

type stubDiscoverer struct {
	files []string
	err   error
}

func (discoverer stubDiscoverer) DiscoverFiles(roots []string, extensions []string) ([]string, error) {
	return discoverer.files, discoverer.err
}

type stubFileReader struct {
	contents map[string][]byte
}

func (reader stubFileReader) ReadFile(path string) ([]byte, error) {
	content, found := reader.contents[path]
	if !found {
		return nil, fmt.Errorf("unreadable: %s", path)
	}
	return content, nil
}

func TestServiceRunBehaviors(testInstance *testing.T) {
	testCases := []struct {
		name           string
		options        scan.CommandOptions
		discoverer     scan.FileDiscoverer
		fileContents   map[string][]byte
		expectedOutput string
		expectedError  string
	}{
		{
			name: "reports_missing_and_extra_sorted_by_magnitude",
			options: scan.CommandOptions{
				Roots:  []string{"/tmp/app"},
				Format: report.FormatText,
				Pair:   balance.DefaultPair(),
			},
			discoverer: stubDiscoverer{files: []string{"/tmp/app/a.ts", "/tmp/app/b.ts", "/tmp/app/c.ts"}},
			fileContents: map[string][]byte{
				"/tmp/app/a.ts": []byte("{ balanced: { ok: 1 } }"),
				"/tmp/app/b.ts": []byte("{ one: {\n"),
				"/tmp/app/c.ts": []byte("{ a: 1 }\n}\n"),
			},
			expectedOutput: "/tmp/app/b.ts\n  Open: 2, Close: 0, Diff: 2 (MISSING 2 closing delimiter(s))\n" +
				"/tmp/app/c.ts\n  Open: 1, Close: 2, Diff: -1 (EXTRA 1 closing delimiter(s))\n" +
				"Total files with issues: 2\n",
			expectedError: "",
		},
		{
			name: "unreadable_file_logged_and_skipped",
			options: scan.CommandOptions{
				Roots:  []string{"/tmp/app"},
				Format: report.FormatText,
				Pair:   balance.DefaultPair(),
			},
			discoverer: stubDiscoverer{files: []string{"/tmp/app/missing.ts", "/tmp/app/broken.ts"}},
			fileContents: map[string][]byte{
				"/tmp/app/broken.ts": []byte("{ open: {\n"),
			},
			expectedOutput: "/tmp/app/broken.ts\n  Open: 2, Close: 0, Diff: 2 (MISSING 2 closing delimiter(s))\n" +
				"Total files with issues: 1\n",
			expectedError: "Error reading /tmp/app/missing.ts: unreadable: /tmp/app/missing.ts\n",
		},
		{
			name: "invalid_utf8_logged_and_skipped",
			options: scan.CommandOptions{
				Roots:  []string{"/tmp/app"},
				Format: report.FormatText,
				Pair:   balance.DefaultPair(),
			},
			discoverer: stubDiscoverer{files: []string{"/tmp/app/binary.ts"}},
			fileContents: map[string][]byte{
				"/tmp/app/binary.ts": {0xff, 0xfe, '{'},
			},
			expectedOutput: "Total files with issues: 0\n",
			expectedError:  "Error reading /tmp/app/binary.ts: content is not valid UTF-8\n",
		},
		{
			name: "debug_lists_discovery",
			options: scan.CommandOptions{
				Roots:  []string{"/tmp/app"},
				Format: report.FormatText,
				Pair:   balance.DefaultPair(),
				Debug:  true,
			},
			discoverer:     stubDiscoverer{files: nil},
			fileContents:   map[string][]byte{},
			expectedOutput: "Total files with issues: 0\n",
			expectedError:  "DEBUG: discovered 0 candidate files under: /tmp/app\n",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subTest *testing.T) {
			outputBuffer := &bytes.Buffer{}
			errorBuffer := &bytes.Buffer{}

			service := scan.NewService(
				testCase.discoverer,
				stubFileReader{contents: testCase.fileContents},
				outputBuffer,
				errorBuffer,
				nil,
			)

			runError := service.Run(context.Background(), testCase.options)
			require.NoError(subTest, runError)
			require.Equal(subTest, testCase.expectedOutput, outputBuffer.String())
			require.Equal(subTest, testCase.expectedError, errorBuffer.String())
		})
	}
}

func TestServiceRunHonorsCancelledContext(testInstance *testing.T) {
	cancelledContext, cancelFunction := context.WithCancel(context.Background())
	cancelFunction()

	service := scan.NewService(
		stubDiscoverer{files: []string{"/tmp/app/a.ts"}},
		stubFileReader{contents: map[string][]byte{"/tmp/app/a.ts": []byte("{")}},
		&bytes.Buffer{},
		&bytes.Buffer{},
		nil,
	)

	runError := service.Run(cancelledContext, scan.CommandOptions{
		Roots:  []string{"/tmp/app"},
		Format: report.FormatText,
		Pair:   balance.DefaultPair(),
	})
	require.ErrorIs(testInstance, runError, context.Canceled)
}
