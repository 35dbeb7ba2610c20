package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StinkyLord/cbuild-idkit/internal/descriptors"
	"github.com/StinkyLord/cbuild-idkit/internal/identifier"
	"github.com/StinkyLord/cbuild-idkit/internal/model"
	"github.com/StinkyLord/cbuild-idkit/internal/projutil"
)

var (
	flagComponent      model.Component
	flagPackage        model.Package
	flagAttributesOnly bool
)

var componentCmd = &cobra.Command{
	Use:   "component",
	Short: "Build component identifiers from attributes",
	Long: `Build the full, aggregate and partial identifiers of a component.
With --tag the condition identifier is printed as well.

Examples:
  cbuild-idkit component --vendor ARM --class CMSIS --group CORE --version 5.6.0
  cbuild-idkit component --class Device --group Startup --variant "C Startup" --tag require`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, componentIDsFor(flagComponent))
	},
}

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Build a pack identifier from attributes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, packageIDFor(flagPackage))
	},
}

var decomposeCmd = &cobra.Command{
	Use:   "decompose <component-id>...",
	Short: "Split component identifiers into their attributes",
	Long: `Split component identifiers into Cvendor, Cclass, Cbundle, Cgroup, Csub,
Cvariant and Cversion. Attributes missing from an identifier are left out.

When both the group and the sub segment carry a variant the sub variant wins;
the result reports variantConflict and the dropped groupVariant.
With --attributes-only just the attributes are printed, sorted by name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagAttributesOnly {
			return emit(cmd, attributeLists(args))
		}
		return emit(cmd, decomposeAll(args))
	},
}

var idsCmd = &cobra.Command{
	Use:   "ids <descriptor.yaml>",
	Short: "Build identifiers for every entry of a descriptor file",
	Long: `Read components, conditions and packs from a YAML descriptor file and
print their identifiers.

Example descriptor file:
  components:
    - {vendor: ARM, class: CMSIS, group: CORE, version: 5.6.0}
  conditions:
    - {tag: require, class: Device, group: Startup}
  packages:
    - {vendor: ARM, name: CMSIS, version: 5.9.0}`,
	Args: cobra.ExactArgs(1),
	RunE: runIDs,
}

func init() {
	f := componentCmd.Flags()
	f.StringVar(&flagComponent.Vendor, "vendor", "", "Component vendor (Cvendor)")
	f.StringVar(&flagComponent.Class, "class", "", "Component class (Cclass)")
	f.StringVar(&flagComponent.Bundle, "bundle", "", "Component bundle (Cbundle)")
	f.StringVar(&flagComponent.Group, "group", "", "Component group (Cgroup)")
	f.StringVar(&flagComponent.Sub, "sub", "", "Component sub-group (Csub)")
	f.StringVar(&flagComponent.Variant, "variant", "", "Component variant (Cvariant)")
	f.StringVar(&flagComponent.Version, "version", "", "Component version (Cversion)")
	f.StringVar(&flagComponent.Tag, "tag", "", "Condition tag, e.g. require, accept, deny")
	f.StringVar(&flagComponent.MaxInstances, "max-instances", "", "Maximum number of component instances")

	pf := packageCmd.Flags()
	pf.StringVar(&flagPackage.Vendor, "vendor", "", "Pack vendor")
	pf.StringVar(&flagPackage.Name, "name", "", "Pack name")
	pf.StringVar(&flagPackage.Version, "version", "", "Pack version")

	decomposeCmd.Flags().BoolVar(&flagAttributesOnly, "attributes-only", false,
		"Print only the attributes of each identifier")

	rootCmd.AddCommand(componentCmd, packageCmd, decomposeCmd, idsCmd)
}

type componentIDs struct {
	ID        string `json:"id" yaml:"id"`
	Aggregate string `json:"aggregate" yaml:"aggregate"`
	Partial   string `json:"partial" yaml:"partial"`
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`

	MaxInstances int `json:"maxInstances,omitempty" yaml:"maxInstances,omitempty"`
}

func componentIDsFor(c model.Component) componentIDs {
	ids := componentIDs{
		ID:        codec.ComponentID(c),
		Aggregate: codec.ComponentAggregateID(c),
		Partial:   codec.PartialComponentID(c),
	}
	if c.Tag != "" {
		ids.Condition = codec.ConditionID(c)
	}
	if c.MaxInstances != "" {
		ids.MaxInstances = projutil.StringToInt(c.MaxInstances)
		if ids.MaxInstances == 0 {
			logger.Warn("ignoring invalid maxInstances", "id", ids.ID, "value", c.MaxInstances)
		}
	}
	return ids
}

type packageID struct {
	ID string `json:"id" yaml:"id"`
}

func packageIDFor(p model.Package) packageID {
	return packageID{ID: codec.PackageID(p)}
}

type decomposeResult struct {
	identifier.Decomposition `yaml:",inline"`

	ID string `json:"id" yaml:"id"`
}

func decomposeAll(ids []string) []decomposeResult {
	results := make([]decomposeResult, 0, len(ids))
	for _, id := range ids {
		d := codec.Decompose(id)
		if d.VariantConflict {
			logger.Warn("variant given for both group and sub, keeping the sub variant",
				"id", id, "dropped", d.GroupVariant, "kept", d.Attributes[identifier.AttrVariant])
		}
		results = append(results, decomposeResult{ID: id, Decomposition: d})
	}
	return results
}

type attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

type attributeList struct {
	ID         string      `json:"id" yaml:"id"`
	Attributes []attribute `json:"attributes" yaml:"attributes"`
}

func attributeLists(ids []string) []attributeList {
	lists := make([]attributeList, 0, len(ids))
	for _, id := range ids {
		attrs := codec.ComponentAttributesFromID(id)
		l := attributeList{ID: id, Attributes: make([]attribute, 0, len(attrs))}
		for _, name := range attrs.Names() {
			l.Attributes = append(l.Attributes, attribute{Name: name, Value: attrs[name]})
		}
		lists = append(lists, l)
	}
	return lists
}

type descriptorIDs struct {
	Components []componentIDs `json:"components,omitempty" yaml:"components,omitempty"`
	Conditions []string       `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Packages   []string       `json:"packages,omitempty" yaml:"packages,omitempty"`
}

func idsFor(f *descriptors.File) descriptorIDs {
	var out descriptorIDs
	for _, c := range f.Components {
		out.Components = append(out.Components, componentIDsFor(c))
	}
	for _, c := range f.Conditions {
		out.Conditions = append(out.Conditions, codec.ConditionID(c))
	}
	for _, p := range f.Packages {
		out.Packages = append(out.Packages, codec.PackageID(p))
	}
	return out
}

func runIDs(cmd *cobra.Command, args []string) error {
	f, err := descriptors.Load(args[0])
	if err != nil {
		return fmt.Errorf("cannot load descriptors: %w", err)
	}
	logger.Debug("loaded descriptors", "file", args[0],
		"components", len(f.Components), "conditions", len(f.Conditions), "packages", len(f.Packages))
	return emit(cmd, idsFor(f))
}
