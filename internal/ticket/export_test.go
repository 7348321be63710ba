package ticket

import "go.etcd.io/bbolt"

// Test hooks exposing unexported internals to the external test package.

const BucketNameForTest = bucketName

// UpdateRawForTest runs a raw bbolt update transaction against the
// underlying database, bypassing the Item codec.
func (d *BoltDB) UpdateRawForTest(fn func(tx *bbolt.Tx) error) error {
	return d.db.Update(fn)
}
