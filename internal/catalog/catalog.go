// Package catalog lists the compute SKUs and regions the CLI validates flag
// input against. The control plane owns the authoritative catalog; unknown
// SKUs in a manifest are legal, the lists here only catch typos at the
// command line.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// GPU SKUs, per https://docs.coreweave.com/coreweave-kubernetes/node-types
var GPUTypes = []string{
	"H100_NVLINK_80GB",
	"H100_PCIE",
	"A100_NVLINK_80GB",
	"A100_NVLINK",
	"A100_PCIE_40GB",
	"A100_PCIE_80GB",
	"A40",
	"RTX_A6000",
	"RTX_A5000",
	"RTX_A4000",
	"Tesla_V100_NVLink",
	"Quadro_RTX_5000",
	"Quadro_RTX_4000",
}

var CPUTypes = []string{
	"intel-xeon-v3",
	"intel-xeon-v4",
	"intel-xeon-icelake",
	"intel-xeon-scalable",
	"amd-epyc-milan",
	"amd-epyc-rome",
}

var Regions = []string{
	"ORD1",
	"LGA1",
	"LAS1",
}

// IsKnownGPU reports whether the SKU appears in the catalog.
func IsKnownGPU(sku string) bool {
	return contains(GPUTypes, sku)
}

// IsKnownCPU reports whether the SKU appears in the catalog.
func IsKnownCPU(sku string) bool {
	return contains(CPUTypes, sku)
}

// IsKnownRegion reports whether the region appears in the catalog.
func IsKnownRegion(region string) bool {
	return contains(Regions, region)
}

// ValidateGPU returns an error naming the known SKUs when the given one is
// not in the catalog.
func ValidateGPU(sku string) error {
	if sku == "" || IsKnownGPU(sku) {
		return nil
	}
	return fmt.Errorf("unknown GPU type %q, known types: %s", sku, joinSorted(GPUTypes))
}

// ValidateCPU returns an error naming the known SKUs when the given one is
// not in the catalog.
func ValidateCPU(sku string) error {
	if sku == "" || IsKnownCPU(sku) {
		return nil
	}
	return fmt.Errorf("unknown CPU type %q, known types: %s", sku, joinSorted(CPUTypes))
}

// ValidateRegion returns an error naming the known regions when the given
// one is not in the catalog.
func ValidateRegion(region string) error {
	if region == "" || IsKnownRegion(region) {
		return nil
	}
	return fmt.Errorf("unknown region %q, known regions: %s", region, joinSorted(Regions))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func joinSorted(list []string) string {
	sorted := append([]string(nil), list...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
