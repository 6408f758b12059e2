// Package deals holds the retailer deal catalogs posted to the channel.
//
// A catalog is an ordered list of deal links for one retailer. Order matters:
// the formatter only shows the first N entries of each catalog. The built-in
// catalogs can be replaced by a JSON file at run time.
package deals
