package awsresources

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/costexplorer"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/eks"
	"github.com/pkg/errors"

	"github.com/codequal/codequal-api/internal/shared/cache"
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/pkg/api/request"
)

type Instance struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	State      string    `json:"state"`
	Zone       string    `json:"zone,omitempty"`
	LaunchedAt time.Time `json:"launched_at,omitempty"`
	AvgCPU24h  float64   `json:"avg_cpu_24h"`
}

type Cluster struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type VPC struct {
	ID    string `json:"id"`
	CIDR  string `json:"cidr"`
	State string `json:"state"`
}

type ResourcesResponse struct {
	Instances []Instance `json:"instances"`
	Clusters  []Cluster  `json:"clusters"`
	VPCs      []VPC      `json:"vpcs"`
	FetchedAt time.Time  `json:"fetched_at"`
}

type CostsResponse struct {
	Month string  `json:"month"`
	Cost  float64 `json:"cost"`
}

type Service interface {
	//url:/v1/aws/resources method:GET
	GetResources(rc *request.InternalContext) (*ResourcesResponse, error)

	//url:/v1/aws/costs method:GET
	GetCosts(rc *request.InternalContext) (*CostsResponse, error)
}

type BasicService struct {
	Cfg   config.Config
	Cache cache.Cache

	EC2 *ec2.EC2
	CW  *cloudwatch.CloudWatch
	EKS *eks.EKS
	CE  *costexplorer.CostExplorer
}

func (s BasicService) GetResources(rc *request.InternalContext) (*ResourcesResponse, error) {
	const cacheKey = "aws/resources?v=1"
	cacheTTL := s.Cfg.GetDuration("AWS_POLL_CACHE_TTL", 5*time.Minute)

	var resp ResourcesResponse
	if err := s.Cache.Get(cacheKey, &resp); err != nil {
		rc.Log.Warnf("Can't fetch %s from cache: %s", cacheKey, err)
	} else if !resp.FetchedAt.IsZero() {
		return &resp, nil
	}

	instances, err := s.fetchInstances(rc.Ctx, rc)
	if err != nil {
		return nil, errors.Wrap(err, "can't fetch ec2 instances")
	}

	clusters, err := s.fetchClusters(rc.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't fetch eks clusters")
	}

	vpcs, err := s.fetchVPCs(rc.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't fetch vpcs")
	}

	resp = ResourcesResponse{
		Instances: instances,
		Clusters:  clusters,
		VPCs:      vpcs,
		FetchedAt: time.Now().UTC(),
	}
	if err = s.Cache.Set(cacheKey, cacheTTL, resp); err != nil {
		rc.Log.Warnf("Can't save %s to cache: %s", cacheKey, err)
	}

	rc.Log.Infof("Polled aws: %d instances, %d eks clusters, %d vpcs",
		len(instances), len(clusters), len(vpcs))
	return &resp, nil
}

func (s BasicService) GetCosts(rc *request.InternalContext) (*CostsResponse, error) {
	const cacheKey = "aws/costs?v=1"
	cacheTTL := s.Cfg.GetDuration("AWS_POLL_CACHE_TTL", 5*time.Minute)

	var resp CostsResponse
	if err := s.Cache.Get(cacheKey, &resp); err != nil {
		rc.Log.Warnf("Can't fetch %s from cache: %s", cacheKey, err)
	} else if resp.Month != "" {
		return &resp, nil
	}

	start, end := monthToDateWindow(time.Now().UTC())
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &costexplorer.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Granularity: aws.String(costexplorer.GranularityMonthly),
		Metrics:     []*string{aws.String("UnblendedCost")},
	}
	res, err := s.CE.GetCostAndUsageWithContext(rc.Ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cost and usage")
	}

	if len(res.ResultsByTime) == 0 {
		return nil, errors.New("cost explorer returned no results for the current month")
	}

	total := res.ResultsByTime[0].Total["UnblendedCost"]
	if total == nil || total.Amount == nil {
		return nil, errors.Errorf("no unblended cost in cost explorer result %#v", res.ResultsByTime[0])
	}

	cost, err := strconv.ParseFloat(*total.Amount, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse cost amount %q", *total.Amount)
	}

	resp = CostsResponse{
		Month: start.Format("2006-01"),
		Cost:  cost,
	}
	if err = s.Cache.Set(cacheKey, cacheTTL, resp); err != nil {
		rc.Log.Warnf("Can't save %s to cache: %s", cacheKey, err)
	}

	rc.Log.Infof("Fetched aws costs for %s: %.2f", resp.Month, resp.Cost)
	return &resp, nil
}

func (s BasicService) fetchInstances(ctx context.Context, rc *request.InternalContext) ([]Instance, error) {
	instances := []Instance{}
	var nextToken *string
	for {
		res, err := s.EC2.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{
			NextToken: nextToken,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to describe instances")
		}

		for _, rsv := range res.Reservations {
			for _, inst := range rsv.Instances {
				instances = append(instances, s.buildInstance(ctx, rc, inst))
			}
		}

		nextToken = res.NextToken
		if nextToken == nil {
			break
		}
	}

	return instances, nil
}

func (s BasicService) buildInstance(ctx context.Context, rc *request.InternalContext, inst *ec2.Instance) Instance {
	ret := Instance{
		ID:         aws.StringValue(inst.InstanceId),
		Type:       aws.StringValue(inst.InstanceType),
		LaunchedAt: aws.TimeValue(inst.LaunchTime),
	}
	if inst.State != nil {
		ret.State = aws.StringValue(inst.State.Name)
	}
	if inst.Placement != nil {
		ret.Zone = aws.StringValue(inst.Placement.AvailabilityZone)
	}

	cpu, err := s.fetchInstanceCPU(ctx, ret.ID)
	if err != nil {
		// don't fail the whole listing because of one instance's metrics
		rc.Log.Warnf("Can't fetch cpu metrics for instance %s: %s", ret.ID, err)
		return ret
	}
	ret.AvgCPU24h = cpu

	return ret
}

func (s BasicService) fetchInstanceCPU(ctx context.Context, instanceID string) (float64, error) {
	end := time.Now().UTC()
	res, err := s.CW.GetMetricStatisticsWithContext(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String("AWS/EC2"),
		MetricName: aws.String("CPUUtilization"),
		Dimensions: []*cloudwatch.Dimension{
			{
				Name:  aws.String("InstanceId"),
				Value: aws.String(instanceID),
			},
		},
		StartTime:  aws.Time(end.Add(-24 * time.Hour)),
		EndTime:    aws.Time(end),
		Period:     aws.Int64(3600),
		Statistics: []*string{aws.String(cloudwatch.StatisticAverage)},
	})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get metric statistics for instance %s", instanceID)
	}

	return averageDatapoints(res.Datapoints), nil
}

func (s BasicService) fetchClusters(ctx context.Context) ([]Cluster, error) {
	listRes, err := s.EKS.ListClustersWithContext(ctx, &eks.ListClustersInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list eks clusters")
	}

	clusters := []Cluster{}
	for _, name := range listRes.Clusters {
		descRes, err := s.EKS.DescribeClusterWithContext(ctx, &eks.DescribeClusterInput{
			Name: name,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to describe eks cluster %s", aws.StringValue(name))
		}
		if descRes.Cluster == nil {
			return nil, errors.Errorf("no cluster in describe result for %s", aws.StringValue(name))
		}

		clusters = append(clusters, Cluster{
			Name:    aws.StringValue(descRes.Cluster.Name),
			Status:  aws.StringValue(descRes.Cluster.Status),
			Version: aws.StringValue(descRes.Cluster.Version),
		})
	}

	return clusters, nil
}

func (s BasicService) fetchVPCs(ctx context.Context) ([]VPC, error) {
	res, err := s.EC2.DescribeVpcsWithContext(ctx, &ec2.DescribeVpcsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to describe vpcs")
	}

	vpcs := []VPC{}
	for _, vpc := range res.Vpcs {
		vpcs = append(vpcs, VPC{
			ID:    aws.StringValue(vpc.VpcId),
			CIDR:  aws.StringValue(vpc.CidrBlock),
			State: aws.StringValue(vpc.State),
		})
	}

	return vpcs, nil
}

func averageDatapoints(dps []*cloudwatch.Datapoint) float64 {
	if len(dps) == 0 {
		return 0
	}

	var sum float64
	for _, dp := range dps {
		sum += aws.Float64Value(dp.Average)
	}
	return sum / float64(len(dps))
}

// monthToDateWindow returns the current calendar month's start and an
// exclusive end date. Cost Explorer rejects Start == End so on the first
// day of a month the window covers that whole day.
func monthToDateWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}
	return start, end
}
