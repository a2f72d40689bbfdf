package extractor

// Test fixtures simulating the raw text a PDF text engine produces for the
// two bill layouts: irregular spacing and table header cells wrapped across
// lines, exactly the artifacts the normalizer exists to repair.

// flatRateBillText is a non-time-differentiated bill. The reactive row's
// meter asset id wraps across a line break.
const flatRateBillText = `中国南方电网公司 广东电网公司 电费通知单
尊敬的： 某某实业有限公司
用户编号：  1234567890
结算户号： 0987654321
结算户名： 某某实业有限公司
计量点编号： 9876543210
基本信息 Basic information
市场化属性分类： 市场化用户
用电类别： 大工业用电
用电开始时间： 20240101
用电结束时间： 20240131
电量信息 Electricity Consumption Details
表计资产编号 示数类型 上次表示数 本次表示数 倍率 抄见电量
 (千瓦时)换表电量
 (千瓦时)退补电量
 (千瓦时)变/线损
电量 公摊电量
 (千瓦时)免费电量
 (千瓦时)分表电量
 (千瓦时)合计电量
 (千瓦时)
0001234567SG001 有功总 1000.0 1100.5 1 100.5 0 0 0 0 0 0 100.5
0001234567S
G001 无功总 500.0 530.0 1 30.0 0 0 0 0 0 30.0
电费信息 Electricity Bill Information
应收电费合计（大写）： 壹佰元整 元
应收电费合计（小写）： 100.00 元
平均电价： 0.995 (元/千瓦时)
`

// timeOfUseBillText is a time-differentiated bill: sharp and peak rows carry
// the optional peak-adjustment column, flat and valley do not, and the
// period start is ISO-dashed while the end is eight digits.
const timeOfUseBillText = `中国南方电网公司 广西电网公司 电费通知单
尊敬的： 某某电子有限公司
用户编号： 2234567890
结算户号： 1987654321
结算户名： 某某电子有限公司
计量点编号： 8876543210
基本信息 Basic information
市场化属性分类： 市场化用户
用电类别： 大工业用电
用电开始时间： 2024-02-01
用电结束时间： 20240229
电量信息 Electricity Consumption Details
表计资产编号 示数类型 上次表示数 本次表示数 倍率 抄见电量
 (千瓦时)换表电量
 (千瓦时)退补电量
 (千瓦时)变/线损电量
 (千瓦时)公摊电量
 (千瓦时)免费电量
 (千瓦时)分表电量
 (千瓦时)尖峰调整电量
 (千瓦时)合计电量
 (千瓦时)
0002234567SG002 尖 10.0 20.0 1 10.0 0 0 0 0 0 0 0 10.0
0002234567SG002 峰 20.0 40.0 1 20.0 0 0 0 0 0 0 0 20.0
0002234567SG002 平 30.0 60.0 1 30.0 0 0 0 0 0 0 30.0
0002234567SG002 谷 5.0 10.0 1 5.0 0 0 0 0 0 0 5.0
0002234567SG002 无功总 2.0 10.0 1 8.0 0 0 0 0 0 8.0
电费信息 Electricity Bill Information
应收电费合计（大写）： 肆拾贰元整 元
应收电费合计（小写）： 42.00 元
平均电价： 0.646 (元/千瓦时)
`
