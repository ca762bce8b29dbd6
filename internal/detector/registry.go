package detector

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/fold"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"gopkg.in/yaml.v3"
)

const (
	defaultDomainWeight    = 95
	defaultSignatureWeight = 90
	defaultKeywordWeight   = 75
	defaultMinKeywordHits  = 2
)

//go:embed vendors.yaml
var defaultRegistry []byte

type registryFile struct {
	Vendors []models.Vendor `yaml:"vendors"`
}

// Registry holds vendor identities. It is read-only after creation.
type Registry struct {
	vendors []models.Vendor
	byCode  map[string]int
	byID    map[string]int
}

// NewRegistry returns new validated Registry with defaults applied to vendors.
func NewRegistry(vendors ...models.Vendor) (*Registry, error) {
	reg := &Registry{
		vendors: make([]models.Vendor, 0, len(vendors)),
		byCode:  make(map[string]int, len(vendors)),
		byID:    make(map[string]int, len(vendors)),
	}

	for _, v := range vendors {
		applyDefaults(&v)
		if _, ok := reg.byCode[v.Code]; ok {
			return nil, fmt.Errorf("%w: duplicated vendor code %q", platform.ErrInvalidRegistry, v.Code)
		}
		if _, ok := reg.byID[v.ID]; ok {
			return nil, fmt.Errorf("%w: duplicated vendor id %q", platform.ErrInvalidRegistry, v.ID)
		}
		reg.byCode[v.Code] = len(reg.vendors)
		reg.byID[v.ID] = len(reg.vendors)
		reg.vendors = append(reg.vendors, v)
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	return reg, nil
}

// DefaultRegistry returns Registry built from embedded vendors file.
func DefaultRegistry() (*Registry, error) {
	return LoadRegistry(strings.NewReader(string(defaultRegistry)))
}

// LoadRegistryFile loads Registry from yaml file.
func LoadRegistryFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open vendor registry: %w", err)
	}
	defer f.Close()

	return LoadRegistry(f)
}

// LoadRegistry decodes yaml vendors document into Registry.
func LoadRegistry(r io.Reader) (*Registry, error) {
	var file registryFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("can't decode vendor registry: %w", err)
	}

	return NewRegistry(file.Vendors...)
}

// Validate checks that vendor names are unique and that no detection domain or signature is shared by two active vendors.
func (r *Registry) Validate() error {
	names := map[string]string{}
	domains := map[string]string{}
	signatures := map[string]string{}

	for _, v := range r.vendors {
		if v.Code == "" || v.Name == "" {
			return fmt.Errorf("%w: vendor must have code and name", platform.ErrInvalidRegistry)
		}
		if other, ok := names[fold.Key(v.Name)]; ok {
			return fmt.Errorf("%w: vendors %q and %q share name", platform.ErrInvalidRegistry, other, v.Code)
		}
		names[fold.Key(v.Name)] = v.Code

		if !v.Active {
			continue
		}

		for _, d := range v.Detection.Domains {
			key := strings.ToLower(strings.TrimSpace(d))
			if other, ok := domains[key]; ok {
				return fmt.Errorf("%w: domain %q registered for %q and %q", platform.ErrInvalidRegistry, d, other, v.Code)
			}
			domains[key] = v.Code
		}

		for _, s := range v.Detection.Signatures {
			key := fold.Lower(s)
			if other, ok := signatures[key]; ok {
				return fmt.Errorf("%w: signature %q registered for %q and %q", platform.ErrInvalidRegistry, s, other, v.Code)
			}
			signatures[key] = v.Code
		}
	}

	return nil
}

// Active returns active vendors in registration order.
func (r *Registry) Active() []models.Vendor {
	active := make([]models.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		if v.Active {
			active = append(active, v)
		}
	}
	return active
}

// ByCode returns vendor with provided code.
func (r *Registry) ByCode(code string) (models.Vendor, bool) {
	ix, ok := r.byCode[code]
	if !ok {
		return models.Vendor{}, false
	}
	return r.vendors[ix], true
}

// ByID returns vendor with provided id.
func (r *Registry) ByID(id string) (models.Vendor, bool) {
	ix, ok := r.byID[id]
	if !ok {
		return models.Vendor{}, false
	}
	return r.vendors[ix], true
}

func applyDefaults(v *models.Vendor) {
	if v.ID == "" {
		v.ID = v.Code
	}
	if v.Parser == "" {
		v.Parser = v.Code
	}
	if v.Enrichment.Strategy == "" {
		v.Enrichment.Strategy = models.StrategyNone
	}

	d := &v.Detection
	if d.MinKeywordHits < defaultMinKeywordHits {
		d.MinKeywordHits = defaultMinKeywordHits
	}
	if d.Weights.Domain == 0 {
		d.Weights.Domain = defaultDomainWeight
	}
	if d.Weights.Signature == 0 {
		d.Weights.Signature = defaultSignatureWeight
	}
	if d.Weights.Keyword == 0 {
		d.Weights.Keyword = defaultKeywordWeight
	}
}
