package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/go-viper/encoding/javaproperties"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
	"github.com/spf13/viper"
)

// DefaultFile is the properties file read when no other path is given
const DefaultFile = "rdsecho.properties"

// Prefix is the namespace of every property
const Prefix = "rdsecho."

// ErrMissingProperty is returned when a required property has no value
var ErrMissingProperty = errors.New("required property is not set")

// Kind selects how echo resources are created, modified and retired
type Kind string

const (
	// KindInstance manages standalone DB instances
	KindInstance Kind = "instance"
	// KindCluster manages DB instances that are the only member of an Aurora
	// cluster
	KindCluster Kind = "cluster"
)

// Property names, without the rdsecho. prefix
const (
	PropInteractive   = "interactive"
	PropName          = "name"
	PropRegion        = "region"
	PropAccountNumber = "accountNumber"
	PropKind          = "kind"

	PropSnapshotDBInstanceIdentifier = "snapshot.dbInstanceIdentifier"
	PropSnapshotDBClusterIdentifier  = "snapshot.dbClusterIdentifier"

	PropNewEngine                  = "new.engine"
	PropNewLicenseModel            = "new.licenseModel"
	PropNewDBInstanceClass         = "new.dbInstanceClass"
	PropNewMultiAZ                 = "new.multiAz"
	PropNewStorageType             = "new.storageType"
	PropNewIops                    = "new.iops"
	PropNewPort                    = "new.port"
	PropNewOptionGroupName         = "new.optionGroupName"
	PropNewAutoMinorVersionUpgrade = "new.autoMinorVersionUpgrade"
	PropNewSubnetGroupName         = "new.subnetGroupName"
	PropNewVpcSecurityGroups       = "new.vpcSecurityGroups"
	PropNewAvailabilityZone        = "new.availabilityZone"
	PropNewTags                    = "new.tags"

	PropModDBParameterGroupName  = "mod.dbParameterGroupName"
	PropModDBSecurityGroups      = "mod.dbSecurityGroups"
	PropModBackupRetentionPeriod = "mod.backupRetentionPeriod"
	PropModApplyImmediately      = "mod.applyImmediately"

	PropPromoteCNAME = "promote.cname"
	PropPromoteTTL   = "promote.ttl"
	PropPromoteTags  = "promote.tags"

	PropRetireSkipFinalSnapshot         = "retire.skipFinalSnapshot"
	PropRetireFinalDBSnapshotIdentifier = "retire.finalDbSnapshotIdentifier"
)

// Properties lists every property in the order they are documented
var Properties = []string{
	PropInteractive,
	PropName,
	PropRegion,
	PropAccountNumber,
	PropKind,
	PropSnapshotDBInstanceIdentifier,
	PropSnapshotDBClusterIdentifier,
	PropNewEngine,
	PropNewLicenseModel,
	PropNewDBInstanceClass,
	PropNewMultiAZ,
	PropNewStorageType,
	PropNewIops,
	PropNewPort,
	PropNewOptionGroupName,
	PropNewAutoMinorVersionUpgrade,
	PropNewSubnetGroupName,
	PropNewVpcSecurityGroups,
	PropNewAvailabilityZone,
	PropNewTags,
	PropModDBParameterGroupName,
	PropModDBSecurityGroups,
	PropModBackupRetentionPeriod,
	PropModApplyImmediately,
	PropPromoteCNAME,
	PropPromoteTTL,
	PropPromoteTags,
	PropRetireSkipFinalSnapshot,
	PropRetireFinalDBSnapshotIdentifier,
}

// Config is the validated configuration of rds-echo
type Config struct {
	Interactive   bool
	Name          string
	Region        string
	AccountNumber string
	Kind          Kind

	Snapshot Snapshot
	New      New
	Mod      Mod
	Promote  Promote
	Retire   Retire
}

// Snapshot identifies the resource whose snapshots new echo resources are
// restored from
type Snapshot struct {
	DBInstanceIdentifier string
	DBClusterIdentifier  string
}

// New holds the settings for restoring a resource, nil values are left for
// the provider to default
type New struct {
	Engine                  *string
	LicenseModel            *string
	DBInstanceClass         *string
	MultiAZ                 *bool
	StorageType             *string
	Iops                    *int32
	Port                    *int32
	OptionGroupName         *string
	AutoMinorVersionUpgrade *bool
	SubnetGroupName         *string
	VpcSecurityGroups       []string
	AvailabilityZone        *string
	Tags                    tags.Tags
}

// Mod holds the settings applied by modify
type Mod struct {
	DBParameterGroupName  *string
	DBSecurityGroups      []string
	BackupRetentionPeriod *int32
	ApplyImmediately      bool
}

// Promote holds the DNS record swapped during promote
type Promote struct {
	CNAME string
	TTL   int64
	Tags  tags.Tags
}

// Retire holds the final snapshot settings used when deleting a resource
type Retire struct {
	SkipFinalSnapshot         *bool
	FinalDBSnapshotIdentifier *string
}

// EnvName returns the environment variable overriding the property p
func EnvName(p string) string {
	return strings.ToUpper(strings.ReplaceAll(Prefix+p, ".", "_"))
}

// newProperties returns a viper instance that decodes Java properties, viper
// no longer ships a decoder for the format
func newProperties() (*viper.Viper, error) {
	codecs := viper.NewCodecRegistry()

	err := codecs.RegisterCodec("properties", &javaproperties.Codec{})
	if err != nil {
		return nil, fmt.Errorf("unable to register properties codec: %w", err)
	}

	v := viper.NewWithOptions(viper.WithCodecRegistry(codecs))
	v.SetConfigType("properties")

	return v, nil
}

// newViper returns a viper instance reading the properties file at path and
// the environment. A missing file is not an error, all values may come from
// the environment.
func newViper(path string) (*viper.Viper, error) {
	v, err := newProperties()
	if err != nil {
		return nil, err
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	err = v.ReadInConfig()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to read configuration from %s: %w", path, err)
	}

	return v, nil
}

// Load reads the configuration from the properties file at path overlaid with
// the environment and validates it
func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	return parse(&reader{v: v})
}

func parse(r *reader) (*Config, error) {
	c := &Config{}

	c.Interactive = r.requiredBool(PropInteractive)
	c.Name = r.required(PropName)
	c.Region = r.required(PropRegion)
	c.AccountNumber = r.required(PropAccountNumber)

	c.Kind = Kind(strings.ToLower(r.stringOr(PropKind, string(KindInstance))))
	switch c.Kind {
	case KindInstance:
		c.Snapshot.DBInstanceIdentifier = r.required(PropSnapshotDBInstanceIdentifier)
	case KindCluster:
		c.Snapshot.DBClusterIdentifier = r.required(PropSnapshotDBClusterIdentifier)
		r.required(PropNewEngine)
		r.required(PropNewDBInstanceClass)
		r.required(PropNewSubnetGroupName)
	default:
		r.fail(PropKind, fmt.Errorf("unknown kind %q, expected %s or %s", c.Kind, KindInstance, KindCluster))
	}

	c.New = New{
		Engine:                  r.optString(PropNewEngine),
		LicenseModel:            r.optString(PropNewLicenseModel),
		DBInstanceClass:         r.optString(PropNewDBInstanceClass),
		MultiAZ:                 r.optBool(PropNewMultiAZ),
		StorageType:             r.optString(PropNewStorageType),
		Iops:                    r.optInt32(PropNewIops),
		Port:                    r.optInt32(PropNewPort),
		OptionGroupName:         r.optString(PropNewOptionGroupName),
		AutoMinorVersionUpgrade: r.optBool(PropNewAutoMinorVersionUpgrade),
		SubnetGroupName:         r.optString(PropNewSubnetGroupName),
		VpcSecurityGroups:       r.list(PropNewVpcSecurityGroups),
		AvailabilityZone:        r.optString(PropNewAvailabilityZone),
		Tags:                    tags.Parse(r.list(PropNewTags)),
	}

	c.Mod = Mod{
		DBParameterGroupName:  r.optString(PropModDBParameterGroupName),
		DBSecurityGroups:      r.list(PropModDBSecurityGroups),
		BackupRetentionPeriod: r.optInt32(PropModBackupRetentionPeriod),
		ApplyImmediately:      r.requiredBool(PropModApplyImmediately),
	}

	c.Promote = Promote{
		CNAME: r.required(PropPromoteCNAME),
		TTL:   r.requiredInt64(PropPromoteTTL),
		Tags:  tags.Parse(r.list(PropPromoteTags)),
	}

	c.Retire = Retire{
		SkipFinalSnapshot:         r.optBool(PropRetireSkipFinalSnapshot),
		FinalDBSnapshotIdentifier: r.optString(PropRetireFinalDBSnapshotIdentifier),
	}

	if r.err != nil {
		return nil, r.err
	}

	return c, nil
}

// reader wraps viper with typed accessors, the first error is kept and every
// later lookup is skipped
type reader struct {
	v   *viper.Viper
	err error
}

func (r *reader) fail(p string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("invalid property %s%s: %w", Prefix, p, err)
	}
}

// value returns the trimmed value of p, empty values are treated as unset
func (r *reader) value(p string) (string, bool) {
	if r.err != nil {
		return "", false
	}

	s := strings.TrimSpace(r.v.GetString(Prefix + p))
	return s, s != ""
}

func (r *reader) required(p string) string {
	s, ok := r.value(p)
	if !ok && r.err == nil {
		r.err = fmt.Errorf("%w: %s%s", ErrMissingProperty, Prefix, p)
	}

	return s
}

func (r *reader) requiredBool(p string) bool {
	s := r.required(p)
	if r.err != nil {
		return false
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		r.fail(p, err)
	}

	return b
}

func (r *reader) requiredInt64(p string) int64 {
	s := r.required(p)
	if r.err != nil {
		return 0
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		r.fail(p, err)
	}

	return i
}

func (r *reader) stringOr(p, def string) string {
	if s, ok := r.value(p); ok {
		return s
	}

	return def
}

func (r *reader) optString(p string) *string {
	s, ok := r.value(p)
	if !ok {
		return nil
	}

	return &s
}

func (r *reader) optBool(p string) *bool {
	s, ok := r.value(p)
	if !ok {
		return nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		r.fail(p, err)
		return nil
	}

	return &b
}

func (r *reader) optInt32(p string) *int32 {
	s, ok := r.value(p)
	if !ok {
		return nil
	}

	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		r.fail(p, err)
		return nil
	}

	i32 := int32(i)
	return &i32
}

// list splits a comma separated value, empty elements are dropped
func (r *reader) list(p string) []string {
	s, ok := r.value(p)
	if !ok {
		return nil
	}

	l := []string{}
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			l = append(l, e)
		}
	}

	return l
}
