// Package mongodb implements the store interfaces on top of the official
// MongoDB driver. It owns client lifecycle, index bootstrap, the
// translation of query values into BSON filters, and the mapping of driver
// errors onto the store error taxonomy.
package mongodb
