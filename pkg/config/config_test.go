package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jumppad-labs/rdsecho/pkg/tags"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, content string) string {
	p := filepath.Join(t.TempDir(), DefaultFile)

	err := os.WriteFile(p, []byte(content), 0644)
	require.NoError(t, err)

	return p
}

func TestLoadReadsInstanceProperties(t *testing.T) {
	c, err := Load("testdata/rdsecho.properties")
	require.NoError(t, err)

	require.False(t, c.Interactive)
	require.Equal(t, "echo", c.Name)
	require.Equal(t, "eu-west-1", c.Region)
	require.Equal(t, "123456789012", c.AccountNumber)
	require.Equal(t, KindInstance, c.Kind)
	require.Equal(t, "production", c.Snapshot.DBInstanceIdentifier)

	require.Equal(t, "postgres", *c.New.Engine)
	require.True(t, *c.New.MultiAZ)
	require.Nil(t, c.New.Iops)
	require.Nil(t, c.New.LicenseModel)
	require.Equal(t, int32(5432), *c.New.Port)
	require.Equal(t, tags.Tags{"orange": "false", "pear": "maybe"}, c.New.Tags)

	require.Equal(t, "echo-params", *c.Mod.DBParameterGroupName)
	require.Equal(t, []string{"default", "reporting"}, c.Mod.DBSecurityGroups)
	require.Equal(t, int32(7), *c.Mod.BackupRetentionPeriod)
	require.True(t, c.Mod.ApplyImmediately)

	require.Equal(t, "db.example.com", c.Promote.CNAME)
	require.Equal(t, int64(60), c.Promote.TTL)
	require.Equal(t, tags.Tags{"development": "yes", "banana": "no"}, c.Promote.Tags)

	require.False(t, *c.Retire.SkipFinalSnapshot)
	require.Equal(t, "echo-final", *c.Retire.FinalDBSnapshotIdentifier)
}

func TestLoadReadsClusterProperties(t *testing.T) {
	c, err := Load("testdata/cluster.properties")
	require.NoError(t, err)

	require.Equal(t, KindCluster, c.Kind)
	require.Equal(t, "production-cluster", c.Snapshot.DBClusterIdentifier)
	require.Equal(t, "private", *c.New.SubnetGroupName)
	require.Equal(t, []string{"sg-1", "sg-2"}, c.New.VpcSecurityGroups)
	require.Empty(t, c.New.Tags)
	require.Nil(t, c.Retire.SkipFinalSnapshot)
}

func TestLoadPrefersEnvironment(t *testing.T) {
	t.Setenv("RDSECHO_PROMOTE_CNAME", "replica.example.com")
	t.Setenv("RDSECHO_NEW_TAGS", "team=data")

	c, err := Load("testdata/rdsecho.properties")
	require.NoError(t, err)

	require.Equal(t, "replica.example.com", c.Promote.CNAME)
	require.Equal(t, tags.Tags{"team": "data"}, c.New.Tags)
}

func TestLoadWithoutFileUsesEnvironment(t *testing.T) {
	t.Setenv("RDSECHO_INTERACTIVE", "true")
	t.Setenv("RDSECHO_NAME", "echo")
	t.Setenv("RDSECHO_REGION", "us-east-1")
	t.Setenv("RDSECHO_ACCOUNTNUMBER", "123456789012")
	t.Setenv("RDSECHO_SNAPSHOT_DBINSTANCEIDENTIFIER", "production")
	t.Setenv("RDSECHO_MOD_APPLYIMMEDIATELY", "false")
	t.Setenv("RDSECHO_PROMOTE_CNAME", "db.example.com")
	t.Setenv("RDSECHO_PROMOTE_TTL", "30")

	c, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)

	require.True(t, c.Interactive)
	require.Equal(t, int64(30), c.Promote.TTL)
}

func TestLoadFailsOnMissingRequiredProperty(t *testing.T) {
	p := writeProperties(t, `
rdsecho.interactive=true
rdsecho.name=echo
rdsecho.region=us-east-1
rdsecho.accountNumber=123456789012
rdsecho.snapshot.dbInstanceIdentifier=production
rdsecho.mod.applyImmediately=true
rdsecho.promote.ttl=60
`)

	_, err := Load(p)
	require.ErrorIs(t, err, ErrMissingProperty)
	require.ErrorContains(t, err, "rdsecho.promote.cname")
}

func TestLoadFailsWhenClusterMissesSubnetGroup(t *testing.T) {
	p := writeProperties(t, `
rdsecho.interactive=true
rdsecho.name=aurora
rdsecho.region=us-east-1
rdsecho.accountNumber=123456789012
rdsecho.kind=cluster
rdsecho.snapshot.dbClusterIdentifier=production-cluster
rdsecho.new.engine=aurora-postgresql
rdsecho.new.dbInstanceClass=db.r6g.large
rdsecho.mod.applyImmediately=true
rdsecho.promote.cname=db.example.com
rdsecho.promote.ttl=60
`)

	_, err := Load(p)
	require.ErrorIs(t, err, ErrMissingProperty)
	require.ErrorContains(t, err, "rdsecho.new.subnetGroupName")
}

func TestLoadFailsOnInvalidValue(t *testing.T) {
	t.Setenv("RDSECHO_NEW_PORT", "postgres")

	_, err := Load("testdata/rdsecho.properties")
	require.Error(t, err)
	require.ErrorContains(t, err, "rdsecho.new.port")
}

func TestLoadFailsOnUnknownKind(t *testing.T) {
	t.Setenv("RDSECHO_KIND", "serverless")

	_, err := Load("testdata/rdsecho.properties")
	require.ErrorContains(t, err, "serverless")
}

func TestEnvName(t *testing.T) {
	require.Equal(t, "RDSECHO_PROMOTE_CNAME", EnvName(PropPromoteCNAME))
	require.Equal(t, "RDSECHO_SNAPSHOT_DBINSTANCEIDENTIFIER", EnvName(PropSnapshotDBInstanceIdentifier))
}

func TestWriteSampleCreatesLoadableFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultFile)

	err := WriteSample(p)
	require.NoError(t, err)

	c, err := Load(p)
	require.NoError(t, err)

	require.Equal(t, "echo", c.Name)
	require.Equal(t, tags.Tags{"orange": "false", "pear": "maybe"}, c.New.Tags)
	require.Equal(t, tags.Tags{"development": "yes", "banana": "no"}, c.Promote.Tags)
}

func TestWriteSampleDoesNotOverwrite(t *testing.T) {
	p := writeProperties(t, "rdsecho.name=mine\n")

	err := WriteSample(p)
	require.ErrorIs(t, err, ErrFileExists)

	d, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "rdsecho.name=mine\n", string(d))
}

func TestWriteSampleOptsPrefersExistingValues(t *testing.T) {
	out := bytes.NewBufferString("")

	err := WriteSampleOpts(out, "testdata/rdsecho.properties")
	require.NoError(t, err)

	require.Contains(t, out.String(), `export RDSECHO_REGION="eu-west-1"`)
	require.Contains(t, out.String(), `export RDSECHO_KIND="instance"`)
	require.Contains(t, out.String(), `export RDSECHO_PROMOTE_TAGS="development=yes, banana=no"`)
}

func TestLoadDecodesPropertiesSyntax(t *testing.T) {
	p := writeProperties(t, `# comments and both separators are part of the format
! bang comment
rdsecho.interactive = false
rdsecho.name: echo
rdsecho.region=eu-west-1
rdsecho.accountNumber=123456789012
rdsecho.snapshot.dbInstanceIdentifier=production
rdsecho.mod.applyImmediately=false
rdsecho.promote.cname=db.example.com
rdsecho.promote.ttl=300
rdsecho.promote.tags=owner=team=data, \
  tier=gold
`)

	c, err := Load(p)
	require.NoError(t, err)

	require.Equal(t, "echo", c.Name)
	require.Equal(t, int64(300), c.Promote.TTL)
	require.Equal(t, tags.Tags{"owner": "team=data", "tier": "gold"}, c.Promote.Tags)
}
