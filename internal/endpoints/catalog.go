package endpoints

// catalog maps LocalStack service names to the default gateway port each
// service listens on. All services share the edge gateway today, but the
// port is kept per entry so a split gateway only needs a data change.
var catalog = map[string]int{
	"acm":                      4566,
	"amplify":                  4566,
	"apigateway":               4566,
	"apigatewayv2":             4566,
	"appconfig":                4566,
	"appsync":                  4566,
	"athena":                   4566,
	"autoscaling":              4566,
	"backup":                   4566,
	"batch":                    4566,
	"cloudformation":           4566,
	"cloudfront":               4566,
	"cloudtrail":               4566,
	"cloudwatch":               4566,
	"codecommit":               4566,
	"cognito-identity":         4566,
	"cognito-idp":              4566,
	"config":                   4566,
	"dms":                      4566,
	"docdb":                    4566,
	"dynamodb":                 4566,
	"dynamodbstreams":          4566,
	"ec2":                      4566,
	"ecr":                      4566,
	"ecs":                      4566,
	"efs":                      4566,
	"eks":                      4566,
	"elasticache":              4566,
	"elasticbeanstalk":         4566,
	"elb":                      4566,
	"elbv2":                    4566,
	"emr":                      4566,
	"es":                       4566,
	"events":                   4566,
	"firehose":                 4566,
	"glacier":                  4566,
	"glue":                     4566,
	"iam":                      4566,
	"iot":                      4566,
	"iot-data":                 4566,
	"iotanalytics":             4566,
	"iotevents":                4566,
	"kafka":                    4566,
	"kinesis":                  4566,
	"kinesisanalytics":         4566,
	"kms":                      4566,
	"lakeformation":            4566,
	"lambda":                   4566,
	"logs":                     4566,
	"mediaconvert":             4566,
	"mediastore":               4566,
	"mq":                       4566,
	"mwaa":                     4566,
	"neptune":                  4566,
	"opensearch":               4566,
	"organizations":            4566,
	"pinpoint":                 4566,
	"qldb":                     4566,
	"ram":                      4566,
	"rds":                      4566,
	"redshift":                 4566,
	"resource-groups":          4566,
	"resourcegroupstaggingapi": 4566,
	"route53":                  4566,
	"route53resolver":          4566,
	"s3":                       4566,
	"s3control":                4566,
	"sagemaker":                4566,
	"secretsmanager":           4566,
	"serverlessrepo":           4566,
	"servicediscovery":         4566,
	"ses":                      4566,
	"sesv2":                    4566,
	"sns":                      4566,
	"sqs":                      4566,
	"ssm":                      4566,
	"stepfunctions":            4566,
	"sts":                      4566,
	"support":                  4566,
	"swf":                      4566,
	"timestream-query":         4566,
	"timestream-write":         4566,
	"transcribe":               4566,
	"transfer":                 4566,
	"waf":                      4566,
	"wafv2":                    4566,
	"xray":                     4566,
}

// renames adjusts normalized service names to the endpoint keys the AWS
// provider expects. An empty replacement drops the service from the output.
var renames = map[string]string{
	"logs":            "cloudwatchlogs",
	"timestreamquery": "",
	"dynamodbstreams": "",
	"iotdata":         "",
	"support":         "",
}

// exclusions lists services the provider offers no custom endpoint for.
var exclusions = map[string]struct{}{
	"iotanalytics": {},
	"iotevents":    {},
	"mediastore":   {},
	"qldb":         {},
}
