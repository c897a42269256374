package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "340ms" parse correctly.
// Plain integers are accepted as nanoseconds.
type Duration time.Duration

// MarshalYAML renders the duration in its human-readable form
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML parses either a duration string or an integer nanosecond count
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration value: %s", node.Value)
	}
	*d = Duration(n)
	return nil
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds all configuration options for the UniProtKB fetcher
type Config struct {
	// UniProt API settings
	UniProt UniProtConfig `yaml:"uniprot" json:"uniprot"`

	// Rate limiting configuration
	RateLimit RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`

	// Retry configuration
	Retry RetryConfig `yaml:"retry" json:"retry"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// UniProtConfig holds UniProt API settings
type UniProtConfig struct {
	BaseURL   string   `yaml:"base_url" json:"base_url"`
	UserAgent string   `yaml:"user_agent" json:"user_agent"`
	Fields    string   `yaml:"fields" json:"fields"`
	PageSize  int      `yaml:"page_size" json:"page_size"`
	Timeout   Duration `yaml:"timeout" json:"timeout"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// RequestDelay is the fixed pause before each request. UniProt asks
	// clients to stay under ~3 requests per second.
	RequestDelay Duration `yaml:"request_delay" json:"request_delay"`
	// RequestsPerMinute switches to a token bucket when RequestDelay is zero
	RequestsPerMinute int `yaml:"requests_per_minute" json:"requests_per_minute"`
}

// RetryConfig holds retry configuration for transient HTTP failures
type RetryConfig struct {
	MaxAttempts  int      `yaml:"max_attempts" json:"max_attempts"`
	InitialDelay Duration `yaml:"initial_delay" json:"initial_delay"`
	MaxDelay     Duration `yaml:"max_delay" json:"max_delay"`
	Multiplier   float64  `yaml:"multiplier" json:"multiplier"`
	JitterFactor float64  `yaml:"jitter_factor" json:"jitter_factor"`
}

// OutputConfig holds output file configuration
type OutputConfig struct {
	File string `yaml:"file" json:"file"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultFields is the full set of UniProtKB output columns requested when
// no override is given. Splitting this list across several requests is an
// option if URL length limits ever become a problem.
const DefaultFields = "accession,id,gene_names,gene_primary,gene_synonym,gene_oln,gene_orf," +
	"organism_name,organism_id,protein_name,xref_proteomes,lineage,lineage_ids," +
	"virus_hosts,cc_alternative_products,ft_var_seq,fragment,length,mass,cc_mass_spectrometry," +
	"ft_variant,xref_biomuta,xref_dbsnp,xref_dmdm,ft_non_cons,ft_non_std,ft_non_ter," +
	"cc_polymorphism,cc_rna_editing,sequence,cc_sequence_caution,ft_conflict,ft_unsure," +
	"sequence_version,absorption,ft_act_site,cc_activity_regulation,ft_binding,cc_catalytic_activity," +
	"cc_cofactor,ft_dna_bind,ec,cc_function,kinetics,cc_pathway,ph_dependence,redox_potential,rhea," +
	"ft_site,temp_dependence,annotation_score,cc_caution,comment_count,feature_count,keywordid," +
	"keyword,cc_miscellaneous,protein_existence,reviewed,tools,uniparc_id,cc_interaction,cc_subunit," +
	"cc_developmental_stage,cc_induction,cc_tissue_specificity,go_p,go_c,go,go_f,go_id,cc_allergen," +
	"cc_biotechnology,cc_disruption_phenotype,cc_disease,ft_mutagen,cc_pharmaceutical,cc_toxic_dose," +
	"ft_intramem,cc_subcellular_location,ft_topo_dom,ft_transmem,ft_chain,ft_crosslnk,ft_disulfid," +
	"ft_carbohyd,ft_init_met,ft_lipid,ft_mod_res,ft_peptide,cc_ptm,ft_propep,ft_signal,ft_transit," +
	"structure_3d,ft_strand,ft_helix,ft_turn,lit_pubmed_id,date_created,date_modified,date_sequence_modified," +
	"version,ft_coiled,ft_compbias,cc_domain,ft_domain,ft_motif,protein_families,ft_region,ft_repeat,ft_zn_fing"

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		UniProt: UniProtConfig{
			BaseURL:   "https://rest.uniprot.org/uniprotkb/search",
			UserAgent: "upfetch/1.0 (+https://example.org)",
			Fields:    DefaultFields,
			PageSize:  500, // UniProt max page size
			Timeout:   Duration(60 * time.Second),
		},
		RateLimit: RateLimitConfig{
			RequestDelay:      Duration(340 * time.Millisecond), // ~3 requests/sec
			RequestsPerMinute: 0,
		},
		Retry: RetryConfig{
			MaxAttempts:  5,
			InitialDelay: Duration(250 * time.Millisecond),
			MaxDelay:     Duration(30 * time.Second),
			Multiplier:   2.0,
			JitterFactor: 0.1,
		},
		Output: OutputConfig{
			File: "uniprot_output.tsv",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if userAgent := os.Getenv("UPFETCH_USER_AGENT"); userAgent != "" {
		c.UniProt.UserAgent = userAgent
	}
	if baseURL := os.Getenv("UPFETCH_BASE_URL"); baseURL != "" {
		c.UniProt.BaseURL = baseURL
	}
	if fields := os.Getenv("UPFETCH_FIELDS"); fields != "" {
		c.UniProt.Fields = fields
	}
	if pageSize := os.Getenv("UPFETCH_PAGE_SIZE"); pageSize != "" {
		if val, err := strconv.Atoi(pageSize); err == nil && val > 0 {
			c.UniProt.PageSize = val
		}
	}
	if delay := os.Getenv("UPFETCH_REQUEST_DELAY_MS"); delay != "" {
		if val, err := strconv.Atoi(delay); err == nil && val >= 0 {
			c.RateLimit.RequestDelay = Duration(time.Duration(val) * time.Millisecond)
		}
	}
	if attempts := os.Getenv("UPFETCH_MAX_RETRIES"); attempts != "" {
		if val, err := strconv.Atoi(attempts); err == nil && val > 0 {
			c.Retry.MaxAttempts = val
		}
	}
	if output := os.Getenv("UPFETCH_OUTPUT"); output != "" {
		c.Output.File = output
	}
	if logLevel := os.Getenv("UPFETCH_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("UPFETCH_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	// Check in order of precedence
	locations := []string{
		".upfetch.yaml",
		".upfetch.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "upfetch", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "upfetch", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".upfetch.yaml"),
		filepath.Join(os.Getenv("HOME"), ".upfetch.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// MergeCommandLineFlags applies command line flag overrides
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	for key, value := range flags {
		switch key {
		case "output":
			if v, ok := value.(string); ok && v != "" {
				c.Output.File = v
			}
		case "fields":
			if v, ok := value.(string); ok && v != "" {
				c.UniProt.Fields = v
			}
		case "page-size":
			if v, ok := value.(int); ok && v > 0 {
				c.UniProt.PageSize = v
			}
		case "request-delay":
			if v, ok := value.(time.Duration); ok && v >= 0 {
				c.RateLimit.RequestDelay = Duration(v)
			}
		case "max-retries":
			if v, ok := value.(int); ok && v > 0 {
				c.Retry.MaxAttempts = v
			}
		case "log-level":
			if v, ok := value.(string); ok && v != "" {
				c.Logging.Level = v
			}
		}
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.UniProt.BaseURL == "" {
		errs = append(errs, errors.New("UniProt base URL is required"))
	}
	if !strings.HasPrefix(c.UniProt.BaseURL, "http://") && !strings.HasPrefix(c.UniProt.BaseURL, "https://") {
		errs = append(errs, errors.New("UniProt base URL must be an http(s) URL"))
	}
	if c.UniProt.Fields == "" {
		errs = append(errs, errors.New("field list cannot be empty"))
	}
	if c.UniProt.PageSize <= 0 {
		errs = append(errs, errors.New("page size must be positive"))
	}
	if c.UniProt.PageSize > 500 {
		errs = append(errs, errors.New("page size cannot exceed the UniProt maximum of 500"))
	}
	if c.RateLimit.RequestDelay < 0 {
		errs = append(errs, errors.New("request delay cannot be negative"))
	}
	if c.RateLimit.RequestDelay == 0 && c.RateLimit.RequestsPerMinute <= 0 {
		errs = append(errs, errors.New("either request delay or requests per minute must be set"))
	}
	if c.Retry.MaxAttempts <= 0 {
		errs = append(errs, errors.New("max retry attempts must be positive"))
	}
	if c.Retry.Multiplier < 1.0 {
		errs = append(errs, errors.New("retry multiplier must be at least 1.0"))
	}
	if c.Output.File == "" {
		errs = append(errs, errors.New("output file path is required"))
	}

	if len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, err := range errs {
			messages[i] = err.Error()
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
	}

	return nil
}

// Load builds the final configuration from all sources.
// Precedence: defaults < config file < environment < command line flags.
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".env"))
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".upfetch.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
