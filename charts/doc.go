// Package charts draws small statistical charts: Scatter (with an OLS trend
// line), Histogram, BoxPlot and Bar. Data is mapped into the plot area with
// geom.Frame, ticks come from Frame.Ticks, and binning and quartiles use
// go-moremath's stats package.
package charts
