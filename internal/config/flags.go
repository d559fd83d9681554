package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-client-id client ID for authentication
//	-client-secret client secret for authentication
//	-base-url API base URL
//	-f/-file path of the document to upload
//	-t/-task processing task: smart, pii or both
//	-dt document type (default "lr" for lab report)
//	-no-wait submit without polling for the result
//	-poll-interval time between polling attempts (e.g., "10s")
//	-timeout maximum time to wait for completion (e.g., "5m")
//	-copy copy the document id to the clipboard
//	-v verbose output
//	-q quiet mode (errors only)
//	-json output the raw result JSON
//	-c/-config json file path with configs
//	-a mock server listen address
//	-processing-delay mock server processing delay
//	-fail-documents mock server fails every document
//	-token-sign-key mock server token signing key
func ParseFlags() *StructuredConfig {
	var clientID, clientSecret, baseURL string
	var filePath, task, docType string
	var noWait, verbose, quiet, jsonOut, copyID bool
	var pollInterval, timeout time.Duration
	var jsonConfigPath string
	var mockAddress, tokenSignKey string
	var processingDelay time.Duration
	var failDocuments bool

	flag.StringVar(&clientID, "client-id", "", "Client ID for authentication (or EKACARE_CLIENT_ID)")
	flag.StringVar(&clientSecret, "client-secret", "", "Client secret for authentication (or EKACARE_CLIENT_SECRET)")
	flag.StringVar(&baseURL, "base-url", "", "Base URL for the API")
	flag.StringVar(&filePath, "f", "", "Path to the file to process")
	flag.StringVar(&filePath, "file", "", "Path to the file to process (alias)")
	flag.StringVar(&task, "t", "", "Processing task: smart, pii or both")
	flag.StringVar(&task, "task", "", "Processing task (alias)")
	flag.StringVar(&docType, "dt", "", "Document type (lr for lab report)")
	flag.BoolVar(&noWait, "no-wait", false, "Don't wait for processing to complete")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Time between polling attempts (e.g., 10s)")
	flag.DurationVar(&timeout, "timeout", 0, "Maximum time to wait for completion (e.g., 5m)")
	flag.BoolVar(&copyID, "copy", false, "Copy the document ID to the clipboard")
	flag.BoolVar(&verbose, "v", false, "Verbose output")
	flag.BoolVar(&quiet, "q", false, "Quiet mode (only show errors)")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&mockAddress, "a", "", "Mock server listen address host:port")
	flag.DurationVar(&processingDelay, "processing-delay", 0, "Mock server processing delay")
	flag.BoolVar(&failDocuments, "fail-documents", false, "Mock server fails every document")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Mock server token signing key")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			ClientID:     clientID,
			ClientSecret: clientSecret,
		},
		API: API{
			BaseURL: baseURL,
		},
		Poll: Poll{
			Interval: pollInterval,
			Timeout:  timeout,
		},
		Run: Run{
			File:    filePath,
			Task:    task,
			DocType: docType,
			NoWait:  noWait,
			Verbose: verbose,
			Quiet:   quiet,
			JSON:    jsonOut,
			CopyID:  copyID,
		},
		Mock: Mock{
			Address:         mockAddress,
			ProcessingDelay: processingDelay,
			FailDocuments:   failDocuments,
			TokenSignKey:    tokenSignKey,
		},
		JSONFilePath: jsonConfigPath,
	}
}
