package actions

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/jumppad-labs/rdsecho/pkg/clients/database"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/config"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
	"github.com/jumppad-labs/rdsecho/pkg/paging"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
)

// Cluster manages DB instances that are the single member of an Aurora
// cluster restored from a cluster snapshot
type Cluster struct {
	config *config.Config
	client database.RDS
	log    logger.Logger
}

// ClusterID returns the identifier of the cluster owning the instance id
func ClusterID(id string) string {
	return id + "-cluster"
}

func (c *Cluster) Name() config.Kind {
	return config.KindCluster
}

func (c *Cluster) LatestSnapshot(ctx context.Context) (*Snapshot, error) {
	source := c.config.Snapshot.DBClusterIdentifier

	it := paging.New(func(ctx context.Context, marker *string) ([]Snapshot, *string, error) {
		out, err := c.client.DescribeDBClusterSnapshots(ctx, &rds.DescribeDBClusterSnapshotsInput{
			DBClusterIdentifier: aws.String(source),
			Marker:              marker,
		})

		if err != nil {
			return nil, nil, fmt.Errorf("unable to list cluster snapshots of %s: %w", source, err)
		}

		ss := []Snapshot{}
		for _, s := range out.DBClusterSnapshots {
			if aws.ToString(s.Status) != echo.StatusAvailable || s.SnapshotCreateTime == nil {
				continue
			}

			ss = append(ss, Snapshot{ID: aws.ToString(s.DBClusterSnapshotIdentifier), Created: *s.SnapshotCreateTime})
		}

		return ss, nextMarker(out.Marker), nil
	}, nil)

	ss, err := it.Collect(ctx)
	if err != nil {
		return nil, err
	}

	return newest(ss), nil
}

func (c *Cluster) ProposeRestore(id string, s *Snapshot, t tags.Tags) *Proposal {
	n := c.config.New
	cid := ClusterID(id)

	cin := &rds.RestoreDBClusterFromSnapshotInput{
		DBClusterIdentifier: aws.String(cid),
		SnapshotIdentifier:  aws.String(s.ID),
		Engine:              n.Engine,
		DBSubnetGroupName:   n.SubnetGroupName,
		Port:                n.Port,
		VpcSecurityGroupIds: n.VpcSecurityGroups,
	}

	iin := &rds.CreateDBInstanceInput{
		DBInstanceIdentifier:    aws.String(id),
		DBClusterIdentifier:     aws.String(cid),
		Engine:                  n.Engine,
		DBInstanceClass:         n.DBInstanceClass,
		MultiAZ:                 n.MultiAZ,
		AvailabilityZone:        n.AvailabilityZone,
		AutoMinorVersionUpgrade: n.AutoMinorVersionUpgrade,
		Tags:                    tags.ToRDS(t),
	}

	p := newProposal("Proposed new DB cluster and instance", func(ctx context.Context) error {
		_, err := c.client.RestoreDBClusterFromSnapshot(ctx, cin)
		if err != nil {
			return fmt.Errorf("unable to restore cluster %s from snapshot %s: %w", cid, s.ID, err)
		}

		c.log.Info("Restoring cluster", "cluster", cid)

		_, err = c.client.CreateDBInstance(ctx, iin)
		if err != nil {
			return fmt.Errorf("unable to create instance %s in cluster %s: %w", id, cid, err)
		}

		c.log.Info("Created instance in cluster", "instance", id, "cluster", cid)

		return nil
	})

	p.add("snapshot id", s.ID)
	p.add("new cluster id", cid)
	p.add("new instance id", id)
	p.add("engine", n.Engine)
	p.add("subnet group", n.SubnetGroupName)
	p.add("port", n.Port)
	p.add("security groups", n.VpcSecurityGroups)
	p.add("db instance class", n.DBInstanceClass)
	p.add("multi az", n.MultiAZ)
	p.add("availability zone", n.AvailabilityZone)
	p.add("auto minor ver up", n.AutoMinorVersionUpgrade)
	p.add("tags", t)

	return p
}

func (c *Cluster) ProposeModify(r *echo.Resource) *Proposal {
	m := c.config.Mod

	in := &rds.ModifyDBClusterInput{
		DBClusterIdentifier:         aws.String(r.ClusterID),
		DBClusterParameterGroupName: m.DBParameterGroupName,
		VpcSecurityGroupIds:         m.DBSecurityGroups,
		BackupRetentionPeriod:       m.BackupRetentionPeriod,
		ApplyImmediately:            aws.Bool(m.ApplyImmediately),
	}

	p := newProposal("Proposed DB cluster modifications", func(ctx context.Context) error {
		if r.ClusterID == "" {
			return fmt.Errorf("instance %s is not a member of a cluster", r.ID)
		}

		_, err := c.client.ModifyDBCluster(ctx, in)
		if err != nil {
			return fmt.Errorf("unable to modify cluster %s: %w", r.ClusterID, err)
		}

		return nil
	})

	p.add("db instance id", r.ID)
	p.add("db cluster id", r.ClusterID)
	p.add("db cluster param group name", m.DBParameterGroupName)
	p.add("vpc security groups", m.DBSecurityGroups)
	p.add("backup retention period", m.BackupRetentionPeriod)
	p.add("apply immediately", m.ApplyImmediately)

	return p
}

func (c *Cluster) ProposeRetire(r *echo.Resource) (*Proposal, error) {
	if r.ClusterID == "" {
		return nil, fmt.Errorf("instance %s is not a member of a cluster", r.ID)
	}

	rt := c.config.Retire

	skip := rt.SkipFinalSnapshot
	if skip == nil {
		skip = aws.Bool(rt.FinalDBSnapshotIdentifier == nil)
	}

	iin := &rds.DeleteDBInstanceInput{DBInstanceIdentifier: aws.String(r.ID)}
	cin := &rds.DeleteDBClusterInput{
		DBClusterIdentifier:       aws.String(r.ClusterID),
		SkipFinalSnapshot:         skip,
		FinalDBSnapshotIdentifier: rt.FinalDBSnapshotIdentifier,
	}

	p := newProposal("Proposed DB instance and cluster deletion", func(ctx context.Context) error {
		_, err := c.client.DeleteDBInstance(ctx, iin)
		if err != nil {
			return fmt.Errorf("unable to delete %s: %w", r.ID, err)
		}

		_, err = c.client.DeleteDBCluster(ctx, cin)
		if err != nil {
			return fmt.Errorf("unable to delete cluster %s: %w", r.ClusterID, err)
		}

		return nil
	})

	p.add("db instance id", r.ID)
	p.add("db cluster id", r.ClusterID)
	p.add("skip final snapshot", skip)
	p.add("final snapshot id", rt.FinalDBSnapshotIdentifier)

	return p, nil
}
