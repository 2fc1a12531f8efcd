package csvsource

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/spf13/viper"
)

// GenericProfile is used when no profile is named.
const GenericProfile = "generic"

// Sign conventions. With SignStandard a positive amount is money coming in.
const (
	SignStandard = "standard"
	SignInverted = "inverted"
)

// Columns maps statement headers onto transaction fields. Either Amount or
// both Debit and Credit must be set.
type Columns struct {
	Date        string `mapstructure:"date"`
	Description string `mapstructure:"description"`
	Amount      string `mapstructure:"amount"`
	Debit       string `mapstructure:"debit"`
	Credit      string `mapstructure:"credit"`
	Reference   string `mapstructure:"reference"`
}

// Profile describes one bank's CSV export format.
type Profile struct {
	Name             string  `mapstructure:"name"`
	Description      string  `mapstructure:"description"`
	DateLayout       string  `mapstructure:"date_layout"`
	Columns          Columns `mapstructure:"columns"`
	SkipRows         int     `mapstructure:"skip_rows"`
	Delimiter        string  `mapstructure:"delimiter"`
	SignConvention   string  `mapstructure:"sign_convention"`
	AmountMultiplier float64 `mapstructure:"amount_multiplier"`
}

// Validate fills defaults and rejects profiles that cannot produce an amount.
func (p *Profile) Validate() error {
	if p.DateLayout == "" {
		p.DateLayout = "02/01/2006"
	}
	if p.Delimiter == "" {
		p.Delimiter = ","
	}
	if p.SignConvention == "" {
		p.SignConvention = SignStandard
	}
	if p.AmountMultiplier == 0 {
		p.AmountMultiplier = 1
	}
	if p.Columns.Date == "" || p.Columns.Description == "" {
		return fmt.Errorf("%w: profile %q needs date and description columns", apperrors.ErrValidation, p.Name)
	}
	if p.Columns.Amount == "" && (p.Columns.Debit == "" || p.Columns.Credit == "") {
		return fmt.Errorf("%w: profile %q needs an amount column or both debit and credit columns", apperrors.ErrValidation, p.Name)
	}
	if p.SignConvention != SignStandard && p.SignConvention != SignInverted {
		return fmt.Errorf("%w: profile %q has unknown sign convention %q", apperrors.ErrValidation, p.Name, p.SignConvention)
	}
	if len([]rune(p.Delimiter)) != 1 {
		return fmt.Errorf("%w: profile %q delimiter must be a single character", apperrors.ErrValidation, p.Name)
	}
	return nil
}

func builtin() map[string]Profile {
	standard := Columns{Date: "Date", Description: "Description", Amount: "Amount"}
	return map[string]Profile{
		GenericProfile: {
			Name:        GenericProfile,
			Description: "Generic CSV (Date, Description, Amount)",
			DateLayout:  "2006-01-02",
			Columns:     standard,
		},
		"uk-bank-standard": {
			Name:        "uk-bank-standard",
			Description: "UK bank, single amount column",
			DateLayout:  "02/01/2006",
			Columns:     standard,
		},
		"uk-bank-debit-credit": {
			Name:        "uk-bank-debit-credit",
			Description: "UK bank, split debit and credit columns",
			DateLayout:  "02/01/2006",
			Columns:     Columns{Date: "Date", Description: "Description", Debit: "Debit", Credit: "Credit"},
		},
		"us-bank-standard": {
			Name:        "us-bank-standard",
			Description: "US bank, single amount column",
			DateLayout:  "01/02/2006",
			Columns:     standard,
		},
	}
}

// Registry holds the built-in profiles plus any loaded from disk.
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry returns the built-in profiles. When dir is not empty every
// *.yaml and *.yml file in it is loaded on top, replacing built-ins of the
// same name. Files that fail to load are logged and skipped.
func NewRegistry(dir string) (*Registry, error) {
	r := &Registry{profiles: builtin()}
	for name, p := range r.profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		r.profiles[name] = p
	}
	if dir == "" {
		return r, nil
	}

	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("failed to read profile directory %s: %w", dir, err)
	}
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		paths, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			p, err := LoadProfile(path)
			if err != nil {
				slog.Warn("Skipping bank profile", slog.String("path", path), slog.String("error", err.Error()))
				continue
			}
			r.profiles[p.Name] = p
		}
	}
	return r, nil
}

// LoadProfile reads one profile file. The profile name defaults to the file
// name without its extension.
func LoadProfile(path string) (Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Profile{}, fmt.Errorf("failed to read bank profile %s: %w", path, err)
	}
	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return Profile{}, fmt.Errorf("failed to decode bank profile %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Lookup returns the named profile. An empty name selects GenericProfile.
func (r *Registry) Lookup(name string) (Profile, error) {
	if strings.TrimSpace(name) == "" {
		name = GenericProfile
	}
	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: bank profile %q", apperrors.ErrNotFound, name)
	}
	return p, nil
}

// Names lists the known profiles alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
