package settings

import (
	"bytes"
	_ "embed"
	"os"
	"slices"

	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

//go:embed settings.toml
var defaultSettings []byte

// Settings is the process-wide CI configuration. It is decoded once at
// process start and must be treated as read-only afterwards.
type Settings struct {
	MainBranch                     string   `toml:"main_branch"`
	CIConfigRunsOn                 []string `toml:"ci_config_runs_on"`
	InstallPythonReqsForNativeJobs string   `toml:"install_python_reqs_for_native_jobs"`
	DisabledWorkflows              []string `toml:"disabled_workflows"`
	DefaultLocalTestWorkflow       string   `toml:"default_local_test_workflow"`
	ReadyForMergeCustomStatusName  string   `toml:"ready_for_merge_custom_status_name"`

	Repository    Repository    `toml:"repository"`
	AWS           AWS           `toml:"aws"`
	S3            S3            `toml:"s3"`
	Runners       Runners       `toml:"runners"`
	Docker        Docker        `toml:"docker"`
	CIDB          CIDB          `toml:"ci_db"`
	GitHub        GitHub        `toml:"github"`
	Publisher     Publisher     `toml:"publisher"`
	UnitTests     UnitTests     `toml:"unit_tests"`
	Notifications Notifications `toml:"notifications"`
}

type Repository struct {
	Canonical string `toml:"canonical"`
}

type AWS struct {
	EC2MetadataDisabled string `toml:"ec2_metadata_disabled"`
}

type S3 struct {
	Bucket                   string   `toml:"bucket"`
	ReportBucket             string   `toml:"report_bucket"`
	BucketHTTPEndpoint       string   `toml:"bucket_http_endpoint"`
	ReportBucketHTTPEndpoint string   `toml:"report_bucket_http_endpoint"`
	ArtifactPath             string   `toml:"artifact_path"`
	CachePath                string   `toml:"cache_path"`
	HTMLPath                 string   `toml:"html_path"`
	EnableArtifactsReport    bool     `toml:"enable_artifacts_report"`
	CompressThresholdMB      int      `toml:"compress_threshold_mb"`
	TextContentExtensions    []string `toml:"text_content_extensions"`
}

// HTTPEndpoint returns the public HTTP endpoint of a known bucket
func (s *S3) HTTPEndpoint(bucket string) (string, bool) {
	switch bucket {
	case s.Bucket:
		return s.BucketHTTPEndpoint, true
	case s.ReportBucket:
		return s.ReportBucketHTTPEndpoint, true
	}
	return "", false
}

// CompressThreshold returns the compression threshold in bytes
func (s *S3) CompressThreshold() int64 {
	return int64(s.CompressThresholdMB) * 1024 * 1024
}

type Runners struct {
	StyleCheckAMD []string `toml:"style_check_amd"`
	StyleCheckARM []string `toml:"style_check_arm"`
	BuilderAMD    []string `toml:"builder_amd"`
	BuilderARM    []string `toml:"builder_arm"`
}

type Docker struct {
	EnableMultiplatformInOneJob bool     `toml:"enable_multiplatform_in_one_job"`
	MergeRunsOn                 []string `toml:"merge_runs_on"`
	BuildARMRunsOn              []string `toml:"build_arm_runs_on"`
	BuildAMDRunsOn              []string `toml:"build_amd_runs_on"`
	HubUsername                 string   `toml:"hub_username"`
	HubSecret                   string   `toml:"hub_secret"`
}

type CIDB struct {
	DBName         string `toml:"db_name"`
	TableName      string `toml:"table_name"`
	SecretURL      string `toml:"secret_url"`
	SecretUser     string `toml:"secret_user"`
	SecretPassword string `toml:"secret_password"`
}

type GitHub struct {
	UseCustomAuth   bool   `toml:"use_custom_auth"`
	SecretAppID     string `toml:"secret_app_id"`
	SecretAppPEMKey string `toml:"secret_app_pem_key"`
}

// Publisher holds local paths and artifact names of the master-head hook
type Publisher struct {
	BuildDir         string `toml:"build_dir"`
	FullBinary       string `toml:"full_binary"`
	FullArtifact     string `toml:"full_artifact"`
	StrippedBinary   string `toml:"stripped_binary"`
	StrippedArtifact string `toml:"stripped_artifact"`
}

type UnitTests struct {
	Binary     string            `toml:"binary"`
	ResultPath string            `toml:"result_path"`
	SandboxEnv map[string]string `toml:"sandbox_env"`
}

type Notifications struct {
	CustomDataPath string                   `toml:"custom_data_path"`
	Rules          []model.NotificationRule `toml:"rules"`
}

// Default returns the built-in settings
func Default() (*Settings, error) {
	return decode(defaultSettings, &Settings{})
}

// Load returns the built-in settings overlaid by the TOML file at path.
// An empty path returns the defaults.
func Load(path string) (*Settings, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read settings file", goerr.V("path", path))
	}

	return decode(data, s)
}

func decode(data []byte, s *Settings) (*Settings, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, goerr.Wrap(err, "failed to decode settings")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings required by the hooks
func (s *Settings) Validate() error {
	if s.S3.Bucket == "" {
		return goerr.New("s3.bucket must not be empty")
	}
	if s.Repository.Canonical == "" {
		return goerr.New("repository.canonical must not be empty")
	}
	if s.S3.CompressThresholdMB <= 0 {
		return goerr.New("s3.compress_threshold_mb must be positive",
			goerr.V("value", s.S3.CompressThresholdMB))
	}
	for _, rule := range s.Notifications.Rules {
		if rule.Tag == "" {
			return goerr.New("notification rule has empty tag")
		}
	}
	return nil
}

// IsWorkflowDisabled reports whether the named workflow is disabled
func (s *Settings) IsWorkflowDisabled(name string) bool {
	return slices.Contains(s.DisabledWorkflows, name)
}

// Encode renders the settings as TOML
func (s *Settings) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(s); err != nil {
		return nil, goerr.Wrap(err, "failed to encode settings")
	}
	return buf.Bytes(), nil
}
