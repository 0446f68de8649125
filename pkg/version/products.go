package version

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lifx-protocol/lifx-go/pkg/model"
	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

//go:embed products.yaml
var productsYAML []byte

// ErrUnknownProduct indicates a vendor/product pair absent from the registry.
var ErrUnknownProduct = errors.New("unknown product")

// KelvinRange is an inclusive color temperature range. In YAML it is a
// two-element sequence: [min, max].
type KelvinRange struct {
	Min uint16
	Max uint16
}

// UnmarshalYAML decodes a [min, max] sequence.
func (r *KelvinRange) UnmarshalYAML(node *yaml.Node) error {
	var pair []uint16
	if err := node.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: temperature_range needs 2 values, got %d", node.Line, len(pair))
	}
	if pair[0] > pair[1] {
		return fmt.Errorf("line %d: temperature_range min %d exceeds max %d", node.Line, pair[0], pair[1])
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// Features describes what a product supports.
type Features struct {
	Color     bool        `yaml:"color"`
	Infrared  bool        `yaml:"infrared"`
	Multizone bool        `yaml:"multizone"`
	Matrix    bool        `yaml:"matrix"`
	Kelvin    KelvinRange `yaml:"temperature_range"`
}

// CheckKelvin rejects a color temperature outside the product range.
func (f Features) CheckKelvin(kelvin uint16) error {
	if kelvin < f.Kelvin.Min || kelvin > f.Kelvin.Max {
		return &wire.InvalidValueError{
			Field:  "kelvin",
			Value:  kelvin,
			Reason: fmt.Sprintf("must be in [%d, %d]", f.Kelvin.Min, f.Kelvin.Max),
		}
	}
	return nil
}

// CheckColor validates c against the product features. Products without
// color support accept only zero saturation.
func (f Features) CheckColor(c model.HSBK) error {
	if !f.Color && c.Saturation != 0 {
		return &wire.InvalidValueError{Field: "saturation", Value: c.Saturation, Reason: "product has no color support"}
	}
	return f.CheckKelvin(c.Kelvin)
}

// featureOverride is a partial Features applied by a firmware upgrade.
type featureOverride struct {
	Color     *bool        `yaml:"color"`
	Infrared  *bool        `yaml:"infrared"`
	Multizone *bool        `yaml:"multizone"`
	Matrix    *bool        `yaml:"matrix"`
	Kelvin    *KelvinRange `yaml:"temperature_range"`
}

func (o featureOverride) apply(f Features) Features {
	if o.Color != nil {
		f.Color = *o.Color
	}
	if o.Infrared != nil {
		f.Infrared = *o.Infrared
	}
	if o.Multizone != nil {
		f.Multizone = *o.Multizone
	}
	if o.Matrix != nil {
		f.Matrix = *o.Matrix
	}
	if o.Kelvin != nil {
		f.Kelvin = *o.Kelvin
	}
	return f
}

// Upgrade changes product features from a firmware version onwards.
type Upgrade struct {
	Major    uint16          `yaml:"major"`
	Minor    uint16          `yaml:"minor"`
	Features featureOverride `yaml:"features"`
}

// Product is one registry entry.
type Product struct {
	Vendor     uint32    `yaml:"-"`
	VendorName string    `yaml:"-"`
	ID         uint32    `yaml:"pid"`
	Name       string    `yaml:"name"`
	Features   Features  `yaml:"features"`
	Upgrades   []Upgrade `yaml:"upgrades"`
}

// FeaturesAt returns the features of p running firmware fw.
func (p Product) FeaturesAt(fw FirmwareVersion) Features {
	f := p.Features
	for _, u := range p.Upgrades {
		if fw.AtLeast(FirmwareVersion{Major: u.Major, Minor: u.Minor}) {
			f = u.Features.apply(f)
		}
	}
	return f
}

type vendorDoc struct {
	VID      uint32    `yaml:"vid"`
	Name     string    `yaml:"name"`
	Products []Product `yaml:"products"`
}

type productsDoc struct {
	Vendors []vendorDoc `yaml:"vendors"`
}

type productKey struct {
	vendor  uint32
	product uint32
}

// Registry indexes products by vendor and product id.
type Registry struct {
	products map[productKey]Product
}

// ParseRegistry builds a registry from a products YAML document.
// Upgrades are sorted by firmware version.
func ParseRegistry(data []byte) (*Registry, error) {
	var doc productsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing products: %w", err)
	}

	r := &Registry{products: make(map[productKey]Product)}
	for _, v := range doc.Vendors {
		for _, p := range v.Products {
			key := productKey{vendor: v.VID, product: p.ID}
			if _, dup := r.products[key]; dup {
				return nil, fmt.Errorf("parsing products: duplicate product %d/%d", v.VID, p.ID)
			}
			if p.Features.Kelvin == (KelvinRange{}) {
				return nil, fmt.Errorf("parsing products: product %d/%d has no temperature_range", v.VID, p.ID)
			}
			p.Vendor = v.VID
			p.VendorName = v.Name
			sort.SliceStable(p.Upgrades, func(i, j int) bool {
				a := FirmwareVersion{Major: p.Upgrades[i].Major, Minor: p.Upgrades[i].Minor}
				b := FirmwareVersion{Major: p.Upgrades[j].Major, Minor: p.Upgrades[j].Minor}
				return !a.AtLeast(b)
			})
			r.products[key] = p
		}
	}
	return r, nil
}

// Lookup returns the product with the given ids.
func (r *Registry) Lookup(vendor, product uint32) (Product, error) {
	p, ok := r.products[productKey{vendor: vendor, product: product}]
	if !ok {
		return Product{}, fmt.Errorf("%w: vendor %d product %d", ErrUnknownProduct, vendor, product)
	}
	return p, nil
}

// Products returns every product ordered by vendor then product id.
func (r *Registry) Products() []Product {
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Vendor != out[j].Vendor {
			return out[i].Vendor < out[j].Vendor
		}
		return out[i].ID < out[j].ID
	})
	return out
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// DefaultRegistry returns the registry built from the embedded product list.
func DefaultRegistry() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = ParseRegistry(productsYAML)
	})
	return defaultRegistry, defaultErr
}

// LookupProduct finds a product in the default registry.
func LookupProduct(vendor, product uint32) (Product, error) {
	r, err := DefaultRegistry()
	if err != nil {
		return Product{}, err
	}
	return r.Lookup(vendor, product)
}

// ProductFor finds the product reported by a StateVersion response.
func ProductFor(v model.Version) (Product, error) {
	return LookupProduct(v.Vendor, v.Product)
}
