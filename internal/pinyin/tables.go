// Code generated from the published romanization charts; edit the charts,
// not this file, when a chart revision lands.

package pinyin

var hanyuTable = map[string]string{
	"a":      "ㄚ",
	"ai":     "ㄞ",
	"an":     "ㄢ",
	"ang":    "ㄤ",
	"ao":     "ㄠ",
	"ba":     "ㄅㄚ",
	"bai":    "ㄅㄞ",
	"ban":    "ㄅㄢ",
	"bang":   "ㄅㄤ",
	"bao":    "ㄅㄠ",
	"bei":    "ㄅㄟ",
	"ben":    "ㄅㄣ",
	"beng":   "ㄅㄥ",
	"bi":     "ㄅㄧ",
	"bian":   "ㄅㄧㄢ",
	"biang":  "ㄅㄧㄤ",
	"biao":   "ㄅㄧㄠ",
	"bie":    "ㄅㄧㄝ",
	"bin":    "ㄅㄧㄣ",
	"bing":   "ㄅㄧㄥ",
	"bo":     "ㄅㄛ",
	"bu":     "ㄅㄨ",
	"ca":     "ㄘㄚ",
	"cai":    "ㄘㄞ",
	"can":    "ㄘㄢ",
	"cang":   "ㄘㄤ",
	"cao":    "ㄘㄠ",
	"ce":     "ㄘㄜ",
	"cei":    "ㄘㄟ",
	"cen":    "ㄘㄣ",
	"ceng":   "ㄘㄥ",
	"cha":    "ㄔㄚ",
	"chai":   "ㄔㄞ",
	"chan":   "ㄔㄢ",
	"chang":  "ㄔㄤ",
	"chao":   "ㄔㄠ",
	"che":    "ㄔㄜ",
	"chen":   "ㄔㄣ",
	"cheng":  "ㄔㄥ",
	"chi":    "ㄔ",
	"chong":  "ㄔㄨㄥ",
	"chou":   "ㄔㄡ",
	"chu":    "ㄔㄨ",
	"chua":   "ㄔㄨㄚ",
	"chuai":  "ㄔㄨㄞ",
	"chuan":  "ㄔㄨㄢ",
	"chuang": "ㄔㄨㄤ",
	"chui":   "ㄔㄨㄟ",
	"chun":   "ㄔㄨㄣ",
	"chuo":   "ㄔㄨㄛ",
	"ci":     "ㄘ",
	"cong":   "ㄘㄨㄥ",
	"cou":    "ㄘㄡ",
	"cu":     "ㄘㄨ",
	"cuan":   "ㄘㄨㄢ",
	"cui":    "ㄘㄨㄟ",
	"cun":    "ㄘㄨㄣ",
	"cuo":    "ㄘㄨㄛ",
	"da":     "ㄉㄚ",
	"dai":    "ㄉㄞ",
	"dan":    "ㄉㄢ",
	"dang":   "ㄉㄤ",
	"dao":    "ㄉㄠ",
	"de":     "ㄉㄜ",
	"dei":    "ㄉㄟ",
	"den":    "ㄉㄣ",
	"deng":   "ㄉㄥ",
	"di":     "ㄉㄧ",
	"dia":    "ㄉㄧㄚ",
	"dian":   "ㄉㄧㄢ",
	"diao":   "ㄉㄧㄠ",
	"die":    "ㄉㄧㄝ",
	"ding":   "ㄉㄧㄥ",
	"diu":    "ㄉㄧㄡ",
	"dong":   "ㄉㄨㄥ",
	"dou":    "ㄉㄡ",
	"du":     "ㄉㄨ",
	"duan":   "ㄉㄨㄢ",
	"duang":  "ㄉㄨㄤ",
	"dui":    "ㄉㄨㄟ",
	"dun":    "ㄉㄨㄣ",
	"duo":    "ㄉㄨㄛ",
	"e":      "ㄜ",
	"eh":     "ㄝ",
	"ei":     "ㄟ",
	"en":     "ㄣ",
	"eng":    "ㄥ",
	"er":     "ㄦ",
	"fa":     "ㄈㄚ",
	"fan":    "ㄈㄢ",
	"fang":   "ㄈㄤ",
	"fei":    "ㄈㄟ",
	"fen":    "ㄈㄣ",
	"feng":   "ㄈㄥ",
	"fiao":   "ㄈㄧㄠ",
	"fo":     "ㄈㄛ",
	"fong":   "ㄈㄨㄥ",
	"fou":    "ㄈㄡ",
	"fu":     "ㄈㄨ",
	"ga":     "ㄍㄚ",
	"gai":    "ㄍㄞ",
	"gan":    "ㄍㄢ",
	"gang":   "ㄍㄤ",
	"gao":    "ㄍㄠ",
	"ge":     "ㄍㄜ",
	"gei":    "ㄍㄟ",
	"gen":    "ㄍㄣ",
	"geng":   "ㄍㄥ",
	"gi":     "ㄍㄧ",
	"giao":   "ㄍㄧㄠ",
	"gin":    "ㄍㄧㄣ",
	"gong":   "ㄍㄨㄥ",
	"gou":    "ㄍㄡ",
	"gu":     "ㄍㄨ",
	"gua":    "ㄍㄨㄚ",
	"guai":   "ㄍㄨㄞ",
	"guan":   "ㄍㄨㄢ",
	"guang":  "ㄍㄨㄤ",
	"gue":    "ㄍㄨㄜ",
	"gui":    "ㄍㄨㄟ",
	"gun":    "ㄍㄨㄣ",
	"guo":    "ㄍㄨㄛ",
	"ha":     "ㄏㄚ",
	"hai":    "ㄏㄞ",
	"han":    "ㄏㄢ",
	"hang":   "ㄏㄤ",
	"hao":    "ㄏㄠ",
	"he":     "ㄏㄜ",
	"hei":    "ㄏㄟ",
	"hen":    "ㄏㄣ",
	"heng":   "ㄏㄥ",
	"hong":   "ㄏㄨㄥ",
	"hou":    "ㄏㄡ",
	"hu":     "ㄏㄨ",
	"hua":    "ㄏㄨㄚ",
	"huai":   "ㄏㄨㄞ",
	"huan":   "ㄏㄨㄢ",
	"huang":  "ㄏㄨㄤ",
	"hui":    "ㄏㄨㄟ",
	"hun":    "ㄏㄨㄣ",
	"huo":    "ㄏㄨㄛ",
	"ji":     "ㄐㄧ",
	"jia":    "ㄐㄧㄚ",
	"jian":   "ㄐㄧㄢ",
	"jiang":  "ㄐㄧㄤ",
	"jiao":   "ㄐㄧㄠ",
	"jie":    "ㄐㄧㄝ",
	"jin":    "ㄐㄧㄣ",
	"jing":   "ㄐㄧㄥ",
	"jiong":  "ㄐㄩㄥ",
	"jiu":    "ㄐㄧㄡ",
	"ju":     "ㄐㄩ",
	"juan":   "ㄐㄩㄢ",
	"jue":    "ㄐㄩㄝ",
	"jun":    "ㄐㄩㄣ",
	"ka":     "ㄎㄚ",
	"kai":    "ㄎㄞ",
	"kan":    "ㄎㄢ",
	"kang":   "ㄎㄤ",
	"kao":    "ㄎㄠ",
	"ke":     "ㄎㄜ",
	"ken":    "ㄎㄣ",
	"keng":   "ㄎㄥ",
	"kiang":  "ㄎㄧㄤ",
	"kiu":    "ㄎㄧㄡ",
	"kong":   "ㄎㄨㄥ",
	"kou":    "ㄎㄡ",
	"ku":     "ㄎㄨ",
	"kua":    "ㄎㄨㄚ",
	"kuai":   "ㄎㄨㄞ",
	"kuan":   "ㄎㄨㄢ",
	"kuang":  "ㄎㄨㄤ",
	"kui":    "ㄎㄨㄟ",
	"kun":    "ㄎㄨㄣ",
	"kuo":    "ㄎㄨㄛ",
	"la":     "ㄌㄚ",
	"lai":    "ㄌㄞ",
	"lan":    "ㄌㄢ",
	"lang":   "ㄌㄤ",
	"lao":    "ㄌㄠ",
	"le":     "ㄌㄜ",
	"lei":    "ㄌㄟ",
	"leng":   "ㄌㄥ",
	"li":     "ㄌㄧ",
	"lia":    "ㄌㄧㄚ",
	"lian":   "ㄌㄧㄢ",
	"liang":  "ㄌㄧㄤ",
	"liao":   "ㄌㄧㄠ",
	"lie":    "ㄌㄧㄝ",
	"lin":    "ㄌㄧㄣ",
	"ling":   "ㄌㄧㄥ",
	"liu":    "ㄌㄧㄡ",
	"lo":     "ㄌㄛ",
	"long":   "ㄌㄨㄥ",
	"lou":    "ㄌㄡ",
	"lu":     "ㄌㄨ",
	"luan":   "ㄌㄨㄢ",
	"lun":    "ㄌㄨㄣ",
	"luo":    "ㄌㄨㄛ",
	"lv":     "ㄌㄩ",
	"lvan":   "ㄌㄩㄢ",
	"lve":    "ㄌㄩㄝ",
	"ma":     "ㄇㄚ",
	"mai":    "ㄇㄞ",
	"man":    "ㄇㄢ",
	"mang":   "ㄇㄤ",
	"mao":    "ㄇㄠ",
	"me":     "ㄇㄜ",
	"mei":    "ㄇㄟ",
	"men":    "ㄇㄣ",
	"meng":   "ㄇㄥ",
	"mi":     "ㄇㄧ",
	"mian":   "ㄇㄧㄢ",
	"miao":   "ㄇㄧㄠ",
	"mie":    "ㄇㄧㄝ",
	"min":    "ㄇㄧㄣ",
	"ming":   "ㄇㄧㄥ",
	"miu":    "ㄇㄧㄡ",
	"mo":     "ㄇㄛ",
	"mou":    "ㄇㄡ",
	"mu":     "ㄇㄨ",
	"na":     "ㄋㄚ",
	"nai":    "ㄋㄞ",
	"nan":    "ㄋㄢ",
	"nang":   "ㄋㄤ",
	"nao":    "ㄋㄠ",
	"ne":     "ㄋㄜ",
	"nei":    "ㄋㄟ",
	"nen":    "ㄋㄣ",
	"neng":   "ㄋㄥ",
	"ni":     "ㄋㄧ",
	"nian":   "ㄋㄧㄢ",
	"niang":  "ㄋㄧㄤ",
	"niao":   "ㄋㄧㄠ",
	"nie":    "ㄋㄧㄝ",
	"nin":    "ㄋㄧㄣ",
	"ning":   "ㄋㄧㄥ",
	"niu":    "ㄋㄧㄡ",
	"nong":   "ㄋㄨㄥ",
	"nou":    "ㄋㄡ",
	"nu":     "ㄋㄨ",
	"nuan":   "ㄋㄨㄢ",
	"nui":    "ㄋㄨㄟ",
	"nun":    "ㄋㄨㄣ",
	"nuo":    "ㄋㄨㄛ",
	"nv":     "ㄋㄩ",
	"nve":    "ㄋㄩㄝ",
	"o":      "ㄛ",
	"ou":     "ㄡ",
	"pa":     "ㄆㄚ",
	"pai":    "ㄆㄞ",
	"pan":    "ㄆㄢ",
	"pang":   "ㄆㄤ",
	"pao":    "ㄆㄠ",
	"pei":    "ㄆㄟ",
	"pen":    "ㄆㄣ",
	"peng":   "ㄆㄥ",
	"pi":     "ㄆㄧ",
	"pia":    "ㄆㄧㄚ",
	"pian":   "ㄆㄧㄢ",
	"piao":   "ㄆㄧㄠ",
	"pie":    "ㄆㄧㄝ",
	"pin":    "ㄆㄧㄣ",
	"ping":   "ㄆㄧㄥ",
	"po":     "ㄆㄛ",
	"pou":    "ㄆㄡ",
	"pu":     "ㄆㄨ",
	"q":      "ㄑ",
	"qi":     "ㄑㄧ",
	"qia":    "ㄑㄧㄚ",
	"qian":   "ㄑㄧㄢ",
	"qiang":  "ㄑㄧㄤ",
	"qiao":   "ㄑㄧㄠ",
	"qie":    "ㄑㄧㄝ",
	"qin":    "ㄑㄧㄣ",
	"qing":   "ㄑㄧㄥ",
	"qiong":  "ㄑㄩㄥ",
	"qiu":    "ㄑㄧㄡ",
	"qu":     "ㄑㄩ",
	"quan":   "ㄑㄩㄢ",
	"que":    "ㄑㄩㄝ",
	"qun":    "ㄑㄩㄣ",
	"ran":    "ㄖㄢ",
	"rang":   "ㄖㄤ",
	"rao":    "ㄖㄠ",
	"re":     "ㄖㄜ",
	"ren":    "ㄖㄣ",
	"reng":   "ㄖㄥ",
	"ri":     "ㄖ",
	"rong":   "ㄖㄨㄥ",
	"rou":    "ㄖㄡ",
	"ru":     "ㄖㄨ",
	"ruan":   "ㄖㄨㄢ",
	"rui":    "ㄖㄨㄟ",
	"run":    "ㄖㄨㄣ",
	"ruo":    "ㄖㄨㄛ",
	"sa":     "ㄙㄚ",
	"sai":    "ㄙㄞ",
	"san":    "ㄙㄢ",
	"sang":   "ㄙㄤ",
	"sao":    "ㄙㄠ",
	"se":     "ㄙㄜ",
	"sei":    "ㄙㄟ",
	"sen":    "ㄙㄣ",
	"seng":   "ㄙㄥ",
	"sha":    "ㄕㄚ",
	"shai":   "ㄕㄞ",
	"shan":   "ㄕㄢ",
	"shang":  "ㄕㄤ",
	"shao":   "ㄕㄠ",
	"she":    "ㄕㄜ",
	"shei":   "ㄕㄟ",
	"shen":   "ㄕㄣ",
	"sheng":  "ㄕㄥ",
	"shi":    "ㄕ",
	"shou":   "ㄕㄡ",
	"shu":    "ㄕㄨ",
	"shua":   "ㄕㄨㄚ",
	"shuai":  "ㄕㄨㄞ",
	"shuan":  "ㄕㄨㄢ",
	"shuang": "ㄕㄨㄤ",
	"shui":   "ㄕㄨㄟ",
	"shun":   "ㄕㄨㄣ",
	"shuo":   "ㄕㄨㄛ",
	"si":     "ㄙ",
	"song":   "ㄙㄨㄥ",
	"sou":    "ㄙㄡ",
	"su":     "ㄙㄨ",
	"suan":   "ㄙㄨㄢ",
	"sui":    "ㄙㄨㄟ",
	"sun":    "ㄙㄨㄣ",
	"suo":    "ㄙㄨㄛ",
	"ta":     "ㄊㄚ",
	"tai":    "ㄊㄞ",
	"tan":    "ㄊㄢ",
	"tang":   "ㄊㄤ",
	"tao":    "ㄊㄠ",
	"te":     "ㄊㄜ",
	"teng":   "ㄊㄥ",
	"ti":     "ㄊㄧ",
	"tian":   "ㄊㄧㄢ",
	"tiao":   "ㄊㄧㄠ",
	"tie":    "ㄊㄧㄝ",
	"ting":   "ㄊㄧㄥ",
	"tong":   "ㄊㄨㄥ",
	"tou":    "ㄊㄡ",
	"tu":     "ㄊㄨ",
	"tuan":   "ㄊㄨㄢ",
	"tui":    "ㄊㄨㄟ",
	"tun":    "ㄊㄨㄣ",
	"tuo":    "ㄊㄨㄛ",
	"wa":     "ㄨㄚ",
	"wai":    "ㄨㄞ",
	"wan":    "ㄨㄢ",
	"wang":   "ㄨㄤ",
	"wei":    "ㄨㄟ",
	"wen":    "ㄨㄣ",
	"weng":   "ㄨㄥ",
	"wo":     "ㄨㄛ",
	"wu":     "ㄨ",
	"xi":     "ㄒㄧ",
	"xia":    "ㄒㄧㄚ",
	"xian":   "ㄒㄧㄢ",
	"xiang":  "ㄒㄧㄤ",
	"xiao":   "ㄒㄧㄠ",
	"xie":    "ㄒㄧㄝ",
	"xin":    "ㄒㄧㄣ",
	"xing":   "ㄒㄧㄥ",
	"xiong":  "ㄒㄩㄥ",
	"xiu":    "ㄒㄧㄡ",
	"xu":     "ㄒㄩ",
	"xuan":   "ㄒㄩㄢ",
	"xue":    "ㄒㄩㄝ",
	"xun":    "ㄒㄩㄣ",
	"ya":     "ㄧㄚ",
	"yai":    "ㄧㄞ",
	"yan":    "ㄧㄢ",
	"yang":   "ㄧㄤ",
	"yao":    "ㄧㄠ",
	"ye":     "ㄧㄝ",
	"yi":     "ㄧ",
	"yin":    "ㄧㄣ",
	"ying":   "ㄧㄥ",
	"yo":     "ㄧㄛ",
	"yong":   "ㄩㄥ",
	"you":    "ㄧㄡ",
	"yu":     "ㄩ",
	"yuan":   "ㄩㄢ",
	"yue":    "ㄩㄝ",
	"yun":    "ㄩㄣ",
	"za":     "ㄗㄚ",
	"zai":    "ㄗㄞ",
	"zan":    "ㄗㄢ",
	"zang":   "ㄗㄤ",
	"zao":    "ㄗㄠ",
	"ze":     "ㄗㄜ",
	"zei":    "ㄗㄟ",
	"zen":    "ㄗㄣ",
	"zeng":   "ㄗㄥ",
	"zha":    "ㄓㄚ",
	"zhai":   "ㄓㄞ",
	"zhan":   "ㄓㄢ",
	"zhang":  "ㄓㄤ",
	"zhao":   "ㄓㄠ",
	"zhe":    "ㄓㄜ",
	"zhei":   "ㄓㄟ",
	"zhen":   "ㄓㄣ",
	"zheng":  "ㄓㄥ",
	"zhi":    "ㄓ",
	"zhong":  "ㄓㄨㄥ",
	"zhou":   "ㄓㄡ",
	"zhu":    "ㄓㄨ",
	"zhua":   "ㄓㄨㄚ",
	"zhuai":  "ㄓㄨㄞ",
	"zhuan":  "ㄓㄨㄢ",
	"zhuang": "ㄓㄨㄤ",
	"zhui":   "ㄓㄨㄟ",
	"zhun":   "ㄓㄨㄣ",
	"zhuo":   "ㄓㄨㄛ",
	"zi":     "ㄗ",
	"zong":   "ㄗㄨㄥ",
	"zou":    "ㄗㄡ",
	"zu":     "ㄗㄨ",
	"zuan":   "ㄗㄨㄢ",
	"zui":    "ㄗㄨㄟ",
	"zun":    "ㄗㄨㄣ",
	"zuo":    "ㄗㄨㄛ",
}

var secondaryTable = map[string]string{
	"a":      "ㄚ",
	"ai":     "ㄞ",
	"an":     "ㄢ",
	"ang":    "ㄤ",
	"au":     "ㄠ",
	"ba":     "ㄅㄚ",
	"bai":    "ㄅㄞ",
	"ban":    "ㄅㄢ",
	"bang":   "ㄅㄤ",
	"bau":    "ㄅㄠ",
	"bei":    "ㄅㄟ",
	"ben":    "ㄅㄣ",
	"beng":   "ㄅㄥ",
	"bi":     "ㄅㄧ",
	"bian":   "ㄅㄧㄢ",
	"biang":  "ㄅㄧㄤ",
	"biau":   "ㄅㄧㄠ",
	"bie":    "ㄅㄧㄝ",
	"bin":    "ㄅㄧㄣ",
	"bing":   "ㄅㄧㄥ",
	"bo":     "ㄅㄛ",
	"bu":     "ㄅㄨ",
	"ch":     "ㄑ",
	"cha":    "ㄔㄚ",
	"chai":   "ㄔㄞ",
	"chan":   "ㄔㄢ",
	"chang":  "ㄔㄤ",
	"chau":   "ㄔㄠ",
	"che":    "ㄔㄜ",
	"chen":   "ㄔㄣ",
	"cheng":  "ㄔㄥ",
	"chi":    "ㄑㄧ",
	"chia":   "ㄑㄧㄚ",
	"chian":  "ㄑㄧㄢ",
	"chiang": "ㄑㄧㄤ",
	"chiau":  "ㄑㄧㄠ",
	"chie":   "ㄑㄧㄝ",
	"chin":   "ㄑㄧㄣ",
	"ching":  "ㄑㄧㄥ",
	"chiou":  "ㄑㄧㄡ",
	"chiu":   "ㄑㄩ",
	"chiuan": "ㄑㄩㄢ",
	"chiue":  "ㄑㄩㄝ",
	"chiun":  "ㄑㄩㄣ",
	"chiung": "ㄑㄩㄥ",
	"chou":   "ㄔㄡ",
	"chr":    "ㄔ",
	"chu":    "ㄔㄨ",
	"chua":   "ㄔㄨㄚ",
	"chuai":  "ㄔㄨㄞ",
	"chuan":  "ㄔㄨㄢ",
	"chuang": "ㄔㄨㄤ",
	"chuei":  "ㄔㄨㄟ",
	"chuen":  "ㄔㄨㄣ",
	"chung":  "ㄔㄨㄥ",
	"chuo":   "ㄔㄨㄛ",
	"da":     "ㄉㄚ",
	"dai":    "ㄉㄞ",
	"dan":    "ㄉㄢ",
	"dang":   "ㄉㄤ",
	"dau":    "ㄉㄠ",
	"de":     "ㄉㄜ",
	"dei":    "ㄉㄟ",
	"den":    "ㄉㄣ",
	"deng":   "ㄉㄥ",
	"di":     "ㄉㄧ",
	"dia":    "ㄉㄧㄚ",
	"dian":   "ㄉㄧㄢ",
	"diau":   "ㄉㄧㄠ",
	"die":    "ㄉㄧㄝ",
	"ding":   "ㄉㄧㄥ",
	"diou":   "ㄉㄧㄡ",
	"dou":    "ㄉㄡ",
	"du":     "ㄉㄨ",
	"duan":   "ㄉㄨㄢ",
	"duang":  "ㄉㄨㄤ",
	"duei":   "ㄉㄨㄟ",
	"duen":   "ㄉㄨㄣ",
	"dung":   "ㄉㄨㄥ",
	"duo":    "ㄉㄨㄛ",
	"e":      "ㄜ",
	"eh":     "ㄝ",
	"ei":     "ㄟ",
	"en":     "ㄣ",
	"eng":    "ㄥ",
	"er":     "ㄦ",
	"fa":     "ㄈㄚ",
	"fan":    "ㄈㄢ",
	"fang":   "ㄈㄤ",
	"fei":    "ㄈㄟ",
	"fen":    "ㄈㄣ",
	"feng":   "ㄈㄥ",
	"fiau":   "ㄈㄧㄠ",
	"fo":     "ㄈㄛ",
	"fou":    "ㄈㄡ",
	"fu":     "ㄈㄨ",
	"ga":     "ㄍㄚ",
	"gai":    "ㄍㄞ",
	"gan":    "ㄍㄢ",
	"gang":   "ㄍㄤ",
	"gau":    "ㄍㄠ",
	"ge":     "ㄍㄜ",
	"gei":    "ㄍㄟ",
	"gen":    "ㄍㄣ",
	"geng":   "ㄍㄥ",
	"giau":   "ㄍㄧㄠ",
	"gin":    "ㄍㄧㄣ",
	"gou":    "ㄍㄡ",
	"gu":     "ㄍㄨ",
	"gua":    "ㄍㄨㄚ",
	"guai":   "ㄍㄨㄞ",
	"guan":   "ㄍㄨㄢ",
	"guang":  "ㄍㄨㄤ",
	"gue":    "ㄍㄨㄜ",
	"guei":   "ㄍㄨㄟ",
	"guen":   "ㄍㄨㄣ",
	"gung":   "ㄍㄨㄥ",
	"guo":    "ㄍㄨㄛ",
	"ha":     "ㄏㄚ",
	"hai":    "ㄏㄞ",
	"han":    "ㄏㄢ",
	"hang":   "ㄏㄤ",
	"hau":    "ㄏㄠ",
	"he":     "ㄏㄜ",
	"hei":    "ㄏㄟ",
	"hen":    "ㄏㄣ",
	"heng":   "ㄏㄥ",
	"hou":    "ㄏㄡ",
	"hu":     "ㄏㄨ",
	"hua":    "ㄏㄨㄚ",
	"huai":   "ㄏㄨㄞ",
	"huan":   "ㄏㄨㄢ",
	"huang":  "ㄏㄨㄤ",
	"huei":   "ㄏㄨㄟ",
	"huen":   "ㄏㄨㄣ",
	"hung":   "ㄏㄨㄥ",
	"huo":    "ㄏㄨㄛ",
	"ja":     "ㄓㄚ",
	"jai":    "ㄓㄞ",
	"jan":    "ㄓㄢ",
	"jang":   "ㄓㄤ",
	"jau":    "ㄓㄠ",
	"je":     "ㄓㄜ",
	"jei":    "ㄓㄟ",
	"jen":    "ㄓㄣ",
	"jeng":   "ㄓㄥ",
	"ji":     "ㄐㄧ",
	"jia":    "ㄐㄧㄚ",
	"jian":   "ㄐㄧㄢ",
	"jiang":  "ㄐㄧㄤ",
	"jiau":   "ㄐㄧㄠ",
	"jie":    "ㄐㄧㄝ",
	"jin":    "ㄐㄧㄣ",
	"jing":   "ㄐㄧㄥ",
	"jiou":   "ㄐㄧㄡ",
	"jiu":    "ㄐㄩ",
	"jiuan":  "ㄐㄩㄢ",
	"jiue":   "ㄐㄩㄝ",
	"jiun":   "ㄐㄩㄣ",
	"jiung":  "ㄐㄩㄥ",
	"jou":    "ㄓㄡ",
	"jr":     "ㄓ",
	"ju":     "ㄓㄨ",
	"jua":    "ㄓㄨㄚ",
	"juai":   "ㄓㄨㄞ",
	"juan":   "ㄓㄨㄢ",
	"juang":  "ㄓㄨㄤ",
	"juei":   "ㄓㄨㄟ",
	"juen":   "ㄓㄨㄣ",
	"jung":   "ㄓㄨㄥ",
	"juo":    "ㄓㄨㄛ",
	"ka":     "ㄎㄚ",
	"kai":    "ㄎㄞ",
	"kan":    "ㄎㄢ",
	"kang":   "ㄎㄤ",
	"kau":    "ㄎㄠ",
	"ke":     "ㄎㄜ",
	"ken":    "ㄎㄣ",
	"keng":   "ㄎㄥ",
	"kiang":  "ㄎㄧㄤ",
	"kou":    "ㄎㄡ",
	"ku":     "ㄎㄨ",
	"kua":    "ㄎㄨㄚ",
	"kuai":   "ㄎㄨㄞ",
	"kuan":   "ㄎㄨㄢ",
	"kuang":  "ㄎㄨㄤ",
	"kuei":   "ㄎㄨㄟ",
	"kuen":   "ㄎㄨㄣ",
	"kung":   "ㄎㄨㄥ",
	"kuo":    "ㄎㄨㄛ",
	"la":     "ㄌㄚ",
	"lai":    "ㄌㄞ",
	"lan":    "ㄌㄢ",
	"lang":   "ㄌㄤ",
	"lau":    "ㄌㄠ",
	"le":     "ㄌㄜ",
	"lei":    "ㄌㄟ",
	"leng":   "ㄌㄥ",
	"li":     "ㄌㄧ",
	"lia":    "ㄌㄧㄚ",
	"lian":   "ㄌㄧㄢ",
	"liang":  "ㄌㄧㄤ",
	"liau":   "ㄌㄧㄠ",
	"lie":    "ㄌㄧㄝ",
	"lin":    "ㄌㄧㄣ",
	"ling":   "ㄌㄧㄥ",
	"liou":   "ㄌㄧㄡ",
	"liu":    "ㄌㄩ",
	"liuan":  "ㄌㄩㄢ",
	"liue":   "ㄌㄩㄝ",
	"lo":     "ㄌㄛ",
	"lou":    "ㄌㄡ",
	"lu":     "ㄌㄨ",
	"luan":   "ㄌㄨㄢ",
	"luen":   "ㄌㄨㄣ",
	"lung":   "ㄌㄨㄥ",
	"luo":    "ㄌㄨㄛ",
	"ma":     "ㄇㄚ",
	"mai":    "ㄇㄞ",
	"man":    "ㄇㄢ",
	"mang":   "ㄇㄤ",
	"mau":    "ㄇㄠ",
	"me":     "ㄇㄜ",
	"mei":    "ㄇㄟ",
	"men":    "ㄇㄣ",
	"meng":   "ㄇㄥ",
	"mi":     "ㄇㄧ",
	"mian":   "ㄇㄧㄢ",
	"miau":   "ㄇㄧㄠ",
	"mie":    "ㄇㄧㄝ",
	"min":    "ㄇㄧㄣ",
	"ming":   "ㄇㄧㄥ",
	"miou":   "ㄇㄧㄡ",
	"mo":     "ㄇㄛ",
	"mou":    "ㄇㄡ",
	"mu":     "ㄇㄨ",
	"na":     "ㄋㄚ",
	"nai":    "ㄋㄞ",
	"nan":    "ㄋㄢ",
	"nang":   "ㄋㄤ",
	"nau":    "ㄋㄠ",
	"ne":     "ㄋㄜ",
	"nei":    "ㄋㄟ",
	"nen":    "ㄋㄣ",
	"neng":   "ㄋㄥ",
	"ni":     "ㄋㄧ",
	"nian":   "ㄋㄧㄢ",
	"niang":  "ㄋㄧㄤ",
	"niau":   "ㄋㄧㄠ",
	"nie":    "ㄋㄧㄝ",
	"nin":    "ㄋㄧㄣ",
	"ning":   "ㄋㄧㄥ",
	"niou":   "ㄋㄧㄡ",
	"niu":    "ㄋㄩ",
	"niue":   "ㄋㄩㄝ",
	"nou":    "ㄋㄡ",
	"nu":     "ㄋㄨ",
	"nuan":   "ㄋㄨㄢ",
	"nuei":   "ㄋㄨㄟ",
	"nuen":   "ㄋㄨㄣ",
	"nung":   "ㄋㄨㄥ",
	"nuo":    "ㄋㄨㄛ",
	"o":      "ㄛ",
	"ou":     "ㄡ",
	"pa":     "ㄆㄚ",
	"pai":    "ㄆㄞ",
	"pan":    "ㄆㄢ",
	"pang":   "ㄆㄤ",
	"pau":    "ㄆㄠ",
	"pei":    "ㄆㄟ",
	"pen":    "ㄆㄣ",
	"peng":   "ㄆㄥ",
	"pi":     "ㄆㄧ",
	"pia":    "ㄆㄧㄚ",
	"pian":   "ㄆㄧㄢ",
	"piau":   "ㄆㄧㄠ",
	"pie":    "ㄆㄧㄝ",
	"pin":    "ㄆㄧㄣ",
	"ping":   "ㄆㄧㄥ",
	"po":     "ㄆㄛ",
	"pou":    "ㄆㄡ",
	"pu":     "ㄆㄨ",
	"r":      "ㄖ",
	"ran":    "ㄖㄢ",
	"rang":   "ㄖㄤ",
	"rau":    "ㄖㄠ",
	"re":     "ㄖㄜ",
	"ren":    "ㄖㄣ",
	"reng":   "ㄖㄥ",
	"rou":    "ㄖㄡ",
	"ru":     "ㄖㄨ",
	"ruan":   "ㄖㄨㄢ",
	"ruei":   "ㄖㄨㄟ",
	"ruen":   "ㄖㄨㄣ",
	"rung":   "ㄖㄨㄥ",
	"ruo":    "ㄖㄨㄛ",
	"sa":     "ㄙㄚ",
	"sai":    "ㄙㄞ",
	"san":    "ㄙㄢ",
	"sang":   "ㄙㄤ",
	"sau":    "ㄙㄠ",
	"se":     "ㄙㄜ",
	"sei":    "ㄙㄟ",
	"sen":    "ㄙㄣ",
	"seng":   "ㄙㄥ",
	"sha":    "ㄕㄚ",
	"shai":   "ㄕㄞ",
	"shan":   "ㄕㄢ",
	"shang":  "ㄕㄤ",
	"shau":   "ㄕㄠ",
	"she":    "ㄕㄜ",
	"shei":   "ㄕㄟ",
	"shen":   "ㄕㄣ",
	"sheng":  "ㄕㄥ",
	"shi":    "ㄒㄧ",
	"shia":   "ㄒㄧㄚ",
	"shian":  "ㄒㄧㄢ",
	"shiang": "ㄒㄧㄤ",
	"shiau":  "ㄒㄧㄠ",
	"shie":   "ㄒㄧㄝ",
	"shin":   "ㄒㄧㄣ",
	"shing":  "ㄒㄧㄥ",
	"shiou":  "ㄒㄧㄡ",
	"shiu":   "ㄒㄩ",
	"shiuan": "ㄒㄩㄢ",
	"shiue":  "ㄒㄩㄝ",
	"shiun":  "ㄒㄩㄣ",
	"shiung": "ㄒㄩㄥ",
	"shou":   "ㄕㄡ",
	"shr":    "ㄕ",
	"shu":    "ㄕㄨ",
	"shua":   "ㄕㄨㄚ",
	"shuai":  "ㄕㄨㄞ",
	"shuan":  "ㄕㄨㄢ",
	"shuang": "ㄕㄨㄤ",
	"shuei":  "ㄕㄨㄟ",
	"shuen":  "ㄕㄨㄣ",
	"shuo":   "ㄕㄨㄛ",
	"sou":    "ㄙㄡ",
	"su":     "ㄙㄨ",
	"suan":   "ㄙㄨㄢ",
	"suei":   "ㄙㄨㄟ",
	"suen":   "ㄙㄨㄣ",
	"sung":   "ㄙㄨㄥ",
	"suo":    "ㄙㄨㄛ",
	"sz":     "ㄙ",
	"ta":     "ㄊㄚ",
	"tai":    "ㄊㄞ",
	"tan":    "ㄊㄢ",
	"tang":   "ㄊㄤ",
	"tau":    "ㄊㄠ",
	"te":     "ㄊㄜ",
	"teng":   "ㄊㄥ",
	"ti":     "ㄊㄧ",
	"tian":   "ㄊㄧㄢ",
	"tiau":   "ㄊㄧㄠ",
	"tie":    "ㄊㄧㄝ",
	"ting":   "ㄊㄧㄥ",
	"tou":    "ㄊㄡ",
	"tsa":    "ㄘㄚ",
	"tsai":   "ㄘㄞ",
	"tsan":   "ㄘㄢ",
	"tsang":  "ㄘㄤ",
	"tsau":   "ㄘㄠ",
	"tse":    "ㄘㄜ",
	"tsen":   "ㄘㄣ",
	"tseng":  "ㄘㄥ",
	"tsou":   "ㄘㄡ",
	"tsu":    "ㄘㄨ",
	"tsuan":  "ㄘㄨㄢ",
	"tsuei":  "ㄘㄨㄟ",
	"tsuen":  "ㄘㄨㄣ",
	"tsung":  "ㄘㄨㄥ",
	"tsuo":   "ㄘㄨㄛ",
	"tsz":    "ㄘ",
	"tu":     "ㄊㄨ",
	"tuan":   "ㄊㄨㄢ",
	"tuei":   "ㄊㄨㄟ",
	"tuen":   "ㄊㄨㄣ",
	"tung":   "ㄊㄨㄥ",
	"tuo":    "ㄊㄨㄛ",
	"tz":     "ㄗ",
	"tza":    "ㄗㄚ",
	"tzai":   "ㄗㄞ",
	"tzan":   "ㄗㄢ",
	"tzang":  "ㄗㄤ",
	"tzau":   "ㄗㄠ",
	"tze":    "ㄗㄜ",
	"tzei":   "ㄗㄟ",
	"tzen":   "ㄗㄣ",
	"tzeng":  "ㄗㄥ",
	"tzou":   "ㄗㄡ",
	"tzu":    "ㄗㄨ",
	"tzuan":  "ㄗㄨㄢ",
	"tzuei":  "ㄗㄨㄟ",
	"tzuen":  "ㄗㄨㄣ",
	"tzung":  "ㄗㄨㄥ",
	"tzuo":   "ㄗㄨㄛ",
	"wa":     "ㄨㄚ",
	"wai":    "ㄨㄞ",
	"wan":    "ㄨㄢ",
	"wang":   "ㄨㄤ",
	"wei":    "ㄨㄟ",
	"wen":    "ㄨㄣ",
	"weng":   "ㄨㄥ",
	"wo":     "ㄨㄛ",
	"wu":     "ㄨ",
	"ya":     "ㄧㄚ",
	"yai":    "ㄧㄞ",
	"yan":    "ㄧㄢ",
	"yang":   "ㄧㄤ",
	"yau":    "ㄧㄠ",
	"ye":     "ㄧㄝ",
	"yi":     "ㄧ",
	"yin":    "ㄧㄣ",
	"ying":   "ㄧㄥ",
	"yo":     "ㄧㄛ",
	"you":    "ㄧㄡ",
	"yu":     "ㄩ",
	"yuan":   "ㄩㄢ",
	"yue":    "ㄩㄝ",
	"yun":    "ㄩㄣ",
	"yung":   "ㄩㄥ",
}

var yaleTable = map[string]string{
	"a":      "ㄚ",
	"ai":     "ㄞ",
	"an":     "ㄢ",
	"ang":    "ㄤ",
	"au":     "ㄠ",
	"ba":     "ㄅㄚ",
	"bai":    "ㄅㄞ",
	"ban":    "ㄅㄢ",
	"bang":   "ㄅㄤ",
	"bau":    "ㄅㄠ",
	"bei":    "ㄅㄟ",
	"ben":    "ㄅㄣ",
	"beng":   "ㄅㄥ",
	"bi":     "ㄅㄧ",
	"bin":    "ㄅㄧㄣ",
	"bing":   "ㄅㄧㄥ",
	"bu":     "ㄅㄨ",
	"bwo":    "ㄅㄛ",
	"byan":   "ㄅㄧㄢ",
	"byang":  "ㄅㄧㄤ",
	"byau":   "ㄅㄧㄠ",
	"bye":    "ㄅㄧㄝ",
	"ch":     "ㄑ",
	"cha":    "ㄔㄚ",
	"chai":   "ㄔㄞ",
	"chan":   "ㄔㄢ",
	"chang":  "ㄔㄤ",
	"chau":   "ㄔㄠ",
	"che":    "ㄔㄜ",
	"chen":   "ㄔㄣ",
	"cheng":  "ㄔㄥ",
	"chi":    "ㄑㄧ",
	"chin":   "ㄑㄧㄣ",
	"ching":  "ㄑㄧㄥ",
	"chou":   "ㄔㄡ",
	"chr":    "ㄔ",
	"chu":    "ㄔㄨ",
	"chung":  "ㄔㄨㄥ",
	"chwa":   "ㄔㄨㄚ",
	"chwai":  "ㄔㄨㄞ",
	"chwan":  "ㄔㄨㄢ",
	"chwang": "ㄔㄨㄤ",
	"chwei":  "ㄔㄨㄟ",
	"chwo":   "ㄔㄨㄛ",
	"chwun":  "ㄔㄨㄣ",
	"chya":   "ㄑㄧㄚ",
	"chyan":  "ㄑㄧㄢ",
	"chyang": "ㄑㄧㄤ",
	"chyau":  "ㄑㄧㄠ",
	"chye":   "ㄑㄧㄝ",
	"chyou":  "ㄑㄧㄡ",
	"chyu":   "ㄑㄩ",
	"chyun":  "ㄑㄩㄣ",
	"chyung": "ㄑㄩㄥ",
	"chywan": "ㄑㄩㄢ",
	"chywe":  "ㄑㄩㄝ",
	"da":     "ㄉㄚ",
	"dai":    "ㄉㄞ",
	"dan":    "ㄉㄢ",
	"dang":   "ㄉㄤ",
	"dau":    "ㄉㄠ",
	"de":     "ㄉㄜ",
	"dei":    "ㄉㄟ",
	"den":    "ㄉㄣ",
	"deng":   "ㄉㄥ",
	"di":     "ㄉㄧ",
	"ding":   "ㄉㄧㄥ",
	"dou":    "ㄉㄡ",
	"du":     "ㄉㄨ",
	"dung":   "ㄉㄨㄥ",
	"dwan":   "ㄉㄨㄢ",
	"dwang":  "ㄉㄨㄤ",
	"dwei":   "ㄉㄨㄟ",
	"dwo":    "ㄉㄨㄛ",
	"dwun":   "ㄉㄨㄣ",
	"dya":    "ㄉㄧㄚ",
	"dyan":   "ㄉㄧㄢ",
	"dyau":   "ㄉㄧㄠ",
	"dye":    "ㄉㄧㄝ",
	"dyou":   "ㄉㄧㄡ",
	"dz":     "ㄗ",
	"dza":    "ㄗㄚ",
	"dzai":   "ㄗㄞ",
	"dzan":   "ㄗㄢ",
	"dzang":  "ㄗㄤ",
	"dzau":   "ㄗㄠ",
	"dze":    "ㄗㄜ",
	"dzei":   "ㄗㄟ",
	"dzen":   "ㄗㄣ",
	"dzeng":  "ㄗㄥ",
	"dzou":   "ㄗㄡ",
	"dzu":    "ㄗㄨ",
	"dzung":  "ㄗㄨㄥ",
	"dzwan":  "ㄗㄨㄢ",
	"dzwei":  "ㄗㄨㄟ",
	"dzwo":   "ㄗㄨㄛ",
	"dzwun":  "ㄗㄨㄣ",
	"e":      "ㄜ",
	"eh":     "ㄝ",
	"ei":     "ㄟ",
	"en":     "ㄣ",
	"eng":    "ㄥ",
	"er":     "ㄦ",
	"fa":     "ㄈㄚ",
	"fan":    "ㄈㄢ",
	"fang":   "ㄈㄤ",
	"fei":    "ㄈㄟ",
	"fen":    "ㄈㄣ",
	"feng":   "ㄈㄥ",
	"fou":    "ㄈㄡ",
	"fu":     "ㄈㄨ",
	"fwo":    "ㄈㄛ",
	"fyau":   "ㄈㄧㄠ",
	"ga":     "ㄍㄚ",
	"gai":    "ㄍㄞ",
	"gan":    "ㄍㄢ",
	"gang":   "ㄍㄤ",
	"gau":    "ㄍㄠ",
	"ge":     "ㄍㄜ",
	"gei":    "ㄍㄟ",
	"gen":    "ㄍㄣ",
	"geng":   "ㄍㄥ",
	"giau":   "ㄍㄧㄠ",
	"gin":    "ㄍㄧㄣ",
	"gou":    "ㄍㄡ",
	"gu":     "ㄍㄨ",
	"gue":    "ㄍㄨㄜ",
	"gung":   "ㄍㄨㄥ",
	"gwa":    "ㄍㄨㄚ",
	"gwai":   "ㄍㄨㄞ",
	"gwan":   "ㄍㄨㄢ",
	"gwang":  "ㄍㄨㄤ",
	"gwei":   "ㄍㄨㄟ",
	"gwo":    "ㄍㄨㄛ",
	"gwun":   "ㄍㄨㄣ",
	"ha":     "ㄏㄚ",
	"hai":    "ㄏㄞ",
	"han":    "ㄏㄢ",
	"hang":   "ㄏㄤ",
	"hau":    "ㄏㄠ",
	"he":     "ㄏㄜ",
	"hei":    "ㄏㄟ",
	"hen":    "ㄏㄣ",
	"heng":   "ㄏㄥ",
	"hou":    "ㄏㄡ",
	"hu":     "ㄏㄨ",
	"hung":   "ㄏㄨㄥ",
	"hwa":    "ㄏㄨㄚ",
	"hwai":   "ㄏㄨㄞ",
	"hwan":   "ㄏㄨㄢ",
	"hwang":  "ㄏㄨㄤ",
	"hwei":   "ㄏㄨㄟ",
	"hwo":    "ㄏㄨㄛ",
	"hwun":   "ㄏㄨㄣ",
	"ja":     "ㄓㄚ",
	"jai":    "ㄓㄞ",
	"jan":    "ㄓㄢ",
	"jang":   "ㄓㄤ",
	"jau":    "ㄓㄠ",
	"je":     "ㄓㄜ",
	"jei":    "ㄓㄟ",
	"jen":    "ㄓㄣ",
	"jeng":   "ㄓㄥ",
	"ji":     "ㄐㄧ",
	"jin":    "ㄐㄧㄣ",
	"jing":   "ㄐㄧㄥ",
	"jou":    "ㄓㄡ",
	"jr":     "ㄓ",
	"ju":     "ㄓㄨ",
	"jung":   "ㄓㄨㄥ",
	"jwa":    "ㄓㄨㄚ",
	"jwai":   "ㄓㄨㄞ",
	"jwan":   "ㄓㄨㄢ",
	"jwang":  "ㄓㄨㄤ",
	"jwei":   "ㄓㄨㄟ",
	"jwo":    "ㄓㄨㄛ",
	"jwun":   "ㄓㄨㄣ",
	"jya":    "ㄐㄧㄚ",
	"jyan":   "ㄐㄧㄢ",
	"jyang":  "ㄐㄧㄤ",
	"jyau":   "ㄐㄧㄠ",
	"jye":    "ㄐㄧㄝ",
	"jyou":   "ㄐㄧㄡ",
	"jyu":    "ㄐㄩ",
	"jyun":   "ㄐㄩㄣ",
	"jyung":  "ㄐㄩㄥ",
	"jywan":  "ㄐㄩㄢ",
	"jywe":   "ㄐㄩㄝ",
	"ka":     "ㄎㄚ",
	"kai":    "ㄎㄞ",
	"kan":    "ㄎㄢ",
	"kang":   "ㄎㄤ",
	"kau":    "ㄎㄠ",
	"ke":     "ㄎㄜ",
	"ken":    "ㄎㄣ",
	"keng":   "ㄎㄥ",
	"kou":    "ㄎㄡ",
	"ku":     "ㄎㄨ",
	"kung":   "ㄎㄨㄥ",
	"kwa":    "ㄎㄨㄚ",
	"kwai":   "ㄎㄨㄞ",
	"kwan":   "ㄎㄨㄢ",
	"kwang":  "ㄎㄨㄤ",
	"kwei":   "ㄎㄨㄟ",
	"kwo":    "ㄎㄨㄛ",
	"kwun":   "ㄎㄨㄣ",
	"kyang":  "ㄎㄧㄤ",
	"la":     "ㄌㄚ",
	"lai":    "ㄌㄞ",
	"lan":    "ㄌㄢ",
	"lang":   "ㄌㄤ",
	"lau":    "ㄌㄠ",
	"le":     "ㄌㄜ",
	"lei":    "ㄌㄟ",
	"leng":   "ㄌㄥ",
	"li":     "ㄌㄧ",
	"lin":    "ㄌㄧㄣ",
	"ling":   "ㄌㄧㄥ",
	"lo":     "ㄌㄛ",
	"lou":    "ㄌㄡ",
	"lu":     "ㄌㄨ",
	"lung":   "ㄌㄨㄥ",
	"lwan":   "ㄌㄨㄢ",
	"lwo":    "ㄌㄨㄛ",
	"lwun":   "ㄌㄨㄣ",
	"lya":    "ㄌㄧㄚ",
	"lyan":   "ㄌㄧㄢ",
	"lyang":  "ㄌㄧㄤ",
	"lyau":   "ㄌㄧㄠ",
	"lye":    "ㄌㄧㄝ",
	"lyou":   "ㄌㄧㄡ",
	"lyu":    "ㄌㄩ",
	"lywan":  "ㄌㄩㄢ",
	"lywe":   "ㄌㄩㄝ",
	"ma":     "ㄇㄚ",
	"mai":    "ㄇㄞ",
	"man":    "ㄇㄢ",
	"mang":   "ㄇㄤ",
	"mau":    "ㄇㄠ",
	"me":     "ㄇㄜ",
	"mei":    "ㄇㄟ",
	"men":    "ㄇㄣ",
	"meng":   "ㄇㄥ",
	"mi":     "ㄇㄧ",
	"min":    "ㄇㄧㄣ",
	"ming":   "ㄇㄧㄥ",
	"mou":    "ㄇㄡ",
	"mu":     "ㄇㄨ",
	"mwo":    "ㄇㄛ",
	"myan":   "ㄇㄧㄢ",
	"myau":   "ㄇㄧㄠ",
	"mye":    "ㄇㄧㄝ",
	"myou":   "ㄇㄧㄡ",
	"na":     "ㄋㄚ",
	"nai":    "ㄋㄞ",
	"nan":    "ㄋㄢ",
	"nang":   "ㄋㄤ",
	"nau":    "ㄋㄠ",
	"ne":     "ㄋㄜ",
	"nei":    "ㄋㄟ",
	"nen":    "ㄋㄣ",
	"neng":   "ㄋㄥ",
	"ni":     "ㄋㄧ",
	"nin":    "ㄋㄧㄣ",
	"ning":   "ㄋㄧㄥ",
	"nou":    "ㄋㄡ",
	"nu":     "ㄋㄨ",
	"nung":   "ㄋㄨㄥ",
	"nwan":   "ㄋㄨㄢ",
	"nwei":   "ㄋㄨㄟ",
	"nwo":    "ㄋㄨㄛ",
	"nwun":   "ㄋㄨㄣ",
	"nyan":   "ㄋㄧㄢ",
	"nyang":  "ㄋㄧㄤ",
	"nyau":   "ㄋㄧㄠ",
	"nye":    "ㄋㄧㄝ",
	"nyou":   "ㄋㄧㄡ",
	"nyu":    "ㄋㄩ",
	"nywe":   "ㄋㄩㄝ",
	"o":      "ㄛ",
	"ou":     "ㄡ",
	"pa":     "ㄆㄚ",
	"pai":    "ㄆㄞ",
	"pan":    "ㄆㄢ",
	"pang":   "ㄆㄤ",
	"pau":    "ㄆㄠ",
	"pei":    "ㄆㄟ",
	"pen":    "ㄆㄣ",
	"peng":   "ㄆㄥ",
	"pi":     "ㄆㄧ",
	"pin":    "ㄆㄧㄣ",
	"ping":   "ㄆㄧㄥ",
	"pou":    "ㄆㄡ",
	"pu":     "ㄆㄨ",
	"pwo":    "ㄆㄛ",
	"pya":    "ㄆㄧㄚ",
	"pyan":   "ㄆㄧㄢ",
	"pyau":   "ㄆㄧㄠ",
	"pye":    "ㄆㄧㄝ",
	"r":      "ㄖ",
	"ran":    "ㄖㄢ",
	"rang":   "ㄖㄤ",
	"rau":    "ㄖㄠ",
	"re":     "ㄖㄜ",
	"ren":    "ㄖㄣ",
	"reng":   "ㄖㄥ",
	"rou":    "ㄖㄡ",
	"ru":     "ㄖㄨ",
	"rung":   "ㄖㄨㄥ",
	"rwan":   "ㄖㄨㄢ",
	"rwei":   "ㄖㄨㄟ",
	"rwo":    "ㄖㄨㄛ",
	"rwun":   "ㄖㄨㄣ",
	"sa":     "ㄙㄚ",
	"sai":    "ㄙㄞ",
	"san":    "ㄙㄢ",
	"sang":   "ㄙㄤ",
	"sau":    "ㄙㄠ",
	"se":     "ㄙㄜ",
	"sei":    "ㄙㄟ",
	"sen":    "ㄙㄣ",
	"seng":   "ㄙㄥ",
	"sha":    "ㄕㄚ",
	"shai":   "ㄕㄞ",
	"shan":   "ㄕㄢ",
	"shang":  "ㄕㄤ",
	"shau":   "ㄕㄠ",
	"she":    "ㄕㄜ",
	"shei":   "ㄕㄟ",
	"shen":   "ㄕㄣ",
	"sheng":  "ㄕㄥ",
	"shou":   "ㄕㄡ",
	"shr":    "ㄕ",
	"shu":    "ㄕㄨ",
	"shwa":   "ㄕㄨㄚ",
	"shwai":  "ㄕㄨㄞ",
	"shwan":  "ㄕㄨㄢ",
	"shwang": "ㄕㄨㄤ",
	"shwei":  "ㄕㄨㄟ",
	"shwo":   "ㄕㄨㄛ",
	"shwun":  "ㄕㄨㄣ",
	"sou":    "ㄙㄡ",
	"su":     "ㄙㄨ",
	"sung":   "ㄙㄨㄥ",
	"swan":   "ㄙㄨㄢ",
	"swei":   "ㄙㄨㄟ",
	"swo":    "ㄙㄨㄛ",
	"swun":   "ㄙㄨㄣ",
	"sya":    "ㄒㄧㄚ",
	"syan":   "ㄒㄧㄢ",
	"syang":  "ㄒㄧㄤ",
	"syau":   "ㄒㄧㄠ",
	"sye":    "ㄒㄧㄝ",
	"syi":    "ㄒㄧ",
	"syin":   "ㄒㄧㄣ",
	"sying":  "ㄒㄧㄥ",
	"syou":   "ㄒㄧㄡ",
	"syu":    "ㄒㄩ",
	"syun":   "ㄒㄩㄣ",
	"syung":  "ㄒㄩㄥ",
	"sywan":  "ㄒㄩㄢ",
	"sywe":   "ㄒㄩㄝ",
	"sz":     "ㄙ",
	"ta":     "ㄊㄚ",
	"tai":    "ㄊㄞ",
	"tan":    "ㄊㄢ",
	"tang":   "ㄊㄤ",
	"tau":    "ㄊㄠ",
	"te":     "ㄊㄜ",
	"teng":   "ㄊㄥ",
	"ti":     "ㄊㄧ",
	"ting":   "ㄊㄧㄥ",
	"tou":    "ㄊㄡ",
	"tsa":    "ㄘㄚ",
	"tsai":   "ㄘㄞ",
	"tsan":   "ㄘㄢ",
	"tsang":  "ㄘㄤ",
	"tsau":   "ㄘㄠ",
	"tse":    "ㄘㄜ",
	"tsen":   "ㄘㄣ",
	"tseng":  "ㄘㄥ",
	"tsou":   "ㄘㄡ",
	"tsu":    "ㄘㄨ",
	"tsung":  "ㄘㄨㄥ",
	"tswan":  "ㄘㄨㄢ",
	"tswei":  "ㄘㄨㄟ",
	"tswo":   "ㄘㄨㄛ",
	"tswun":  "ㄘㄨㄣ",
	"tsz":    "ㄘ",
	"tu":     "ㄊㄨ",
	"tung":   "ㄊㄨㄥ",
	"twan":   "ㄊㄨㄢ",
	"twei":   "ㄊㄨㄟ",
	"two":    "ㄊㄨㄛ",
	"twun":   "ㄊㄨㄣ",
	"tyan":   "ㄊㄧㄢ",
	"tyau":   "ㄊㄧㄠ",
	"tye":    "ㄊㄧㄝ",
	"wa":     "ㄨㄚ",
	"wai":    "ㄨㄞ",
	"wan":    "ㄨㄢ",
	"wang":   "ㄨㄤ",
	"wei":    "ㄨㄟ",
	"wen":    "ㄨㄣ",
	"weng":   "ㄨㄥ",
	"wo":     "ㄨㄛ",
	"wu":     "ㄨ",
	"ya":     "ㄧㄚ",
	"yai":    "ㄧㄞ",
	"yan":    "ㄧㄢ",
	"yang":   "ㄧㄤ",
	"yau":    "ㄧㄠ",
	"ye":     "ㄧㄝ",
	"yi":     "ㄧ",
	"yin":    "ㄧㄣ",
	"ying":   "ㄧㄥ",
	"yo":     "ㄧㄛ",
	"you":    "ㄧㄡ",
	"yu":     "ㄩ",
	"yun":    "ㄩㄣ",
	"yung":   "ㄩㄥ",
	"ywan":   "ㄩㄢ",
	"ywe":    "ㄩㄝ",
}

var hualuoTable = map[string]string{
	"a":      "ㄚ",
	"ai":     "ㄞ",
	"an":     "ㄢ",
	"ang":    "ㄤ",
	"ao":     "ㄠ",
	"ba":     "ㄅㄚ",
	"bai":    "ㄅㄞ",
	"ban":    "ㄅㄢ",
	"bang":   "ㄅㄤ",
	"bao":    "ㄅㄠ",
	"bei":    "ㄅㄟ",
	"ben":    "ㄅㄣ",
	"beng":   "ㄅㄥ",
	"bi":     "ㄅㄧ",
	"bian":   "ㄅㄧㄢ",
	"biang":  "ㄅㄧㄤ",
	"biao":   "ㄅㄧㄠ",
	"bieh":   "ㄅㄧㄝ",
	"bin":    "ㄅㄧㄣ",
	"bing":   "ㄅㄧㄥ",
	"bo":     "ㄅㄛ",
	"bu":     "ㄅㄨ",
	"ch":     "ㄑ",
	"cha":    "ㄔㄚ",
	"chai":   "ㄔㄞ",
	"chan":   "ㄔㄢ",
	"chang":  "ㄔㄤ",
	"chao":   "ㄔㄠ",
	"che":    "ㄔㄜ",
	"chen":   "ㄔㄣ",
	"cheng":  "ㄔㄥ",
	"chi":    "ㄑㄧ",
	"chia":   "ㄑㄧㄚ",
	"chian":  "ㄑㄧㄢ",
	"chiang": "ㄑㄧㄤ",
	"chiao":  "ㄑㄧㄠ",
	"chieh":  "ㄑㄧㄝ",
	"chih":   "ㄔ",
	"chin":   "ㄑㄧㄣ",
	"ching":  "ㄑㄧㄥ",
	"chiou":  "ㄑㄧㄡ",
	"chong":  "ㄔㄨㄥ",
	"chou":   "ㄔㄡ",
	"chu":    "ㄔㄨ",
	"chua":   "ㄔㄨㄚ",
	"chuai":  "ㄔㄨㄞ",
	"chuan":  "ㄔㄨㄢ",
	"chuang": "ㄔㄨㄤ",
	"chuei":  "ㄔㄨㄟ",
	"chun":   "ㄔㄨㄣ",
	"chuo":   "ㄔㄨㄛ",
	"chyong": "ㄑㄩㄥ",
	"chyu":   "ㄑㄩ",
	"chyuan": "ㄑㄩㄢ",
	"chyueh": "ㄑㄩㄝ",
	"chyun":  "ㄑㄩㄣ",
	"da":     "ㄉㄚ",
	"dai":    "ㄉㄞ",
	"dan":    "ㄉㄢ",
	"dang":   "ㄉㄤ",
	"dao":    "ㄉㄠ",
	"de":     "ㄉㄜ",
	"dei":    "ㄉㄟ",
	"den":    "ㄉㄣ",
	"deng":   "ㄉㄥ",
	"di":     "ㄉㄧ",
	"dia":    "ㄉㄧㄚ",
	"dian":   "ㄉㄧㄢ",
	"diao":   "ㄉㄧㄠ",
	"dieh":   "ㄉㄧㄝ",
	"ding":   "ㄉㄧㄥ",
	"diou":   "ㄉㄧㄡ",
	"dong":   "ㄉㄨㄥ",
	"dou":    "ㄉㄡ",
	"du":     "ㄉㄨ",
	"duan":   "ㄉㄨㄢ",
	"duang":  "ㄉㄨㄤ",
	"duei":   "ㄉㄨㄟ",
	"dun":    "ㄉㄨㄣ",
	"duo":    "ㄉㄨㄛ",
	"e":      "ㄜ",
	"eh":     "ㄝ",
	"ei":     "ㄟ",
	"en":     "ㄣ",
	"eng":    "ㄥ",
	"er":     "ㄦ",
	"fa":     "ㄈㄚ",
	"fan":    "ㄈㄢ",
	"fang":   "ㄈㄤ",
	"fei":    "ㄈㄟ",
	"fen":    "ㄈㄣ",
	"feng":   "ㄈㄥ",
	"fiao":   "ㄈㄧㄠ",
	"fo":     "ㄈㄛ",
	"fou":    "ㄈㄡ",
	"fu":     "ㄈㄨ",
	"ga":     "ㄍㄚ",
	"gai":    "ㄍㄞ",
	"gan":    "ㄍㄢ",
	"gang":   "ㄍㄤ",
	"gao":    "ㄍㄠ",
	"ge":     "ㄍㄜ",
	"gei":    "ㄍㄟ",
	"gen":    "ㄍㄣ",
	"geng":   "ㄍㄥ",
	"gin":    "ㄍㄧㄣ",
	"gong":   "ㄍㄨㄥ",
	"gou":    "ㄍㄡ",
	"gu":     "ㄍㄨ",
	"gua":    "ㄍㄨㄚ",
	"guai":   "ㄍㄨㄞ",
	"guan":   "ㄍㄨㄢ",
	"guang":  "ㄍㄨㄤ",
	"gue":    "ㄍㄨㄜ",
	"guei":   "ㄍㄨㄟ",
	"gun":    "ㄍㄨㄣ",
	"guo":    "ㄍㄨㄛ",
	"gyao":   "ㄍㄧㄠ",
	"ha":     "ㄏㄚ",
	"hai":    "ㄏㄞ",
	"han":    "ㄏㄢ",
	"hang":   "ㄏㄤ",
	"hao":    "ㄏㄠ",
	"he":     "ㄏㄜ",
	"hei":    "ㄏㄟ",
	"hen":    "ㄏㄣ",
	"heng":   "ㄏㄥ",
	"hong":   "ㄏㄨㄥ",
	"hou":    "ㄏㄡ",
	"hu":     "ㄏㄨ",
	"hua":    "ㄏㄨㄚ",
	"huai":   "ㄏㄨㄞ",
	"huan":   "ㄏㄨㄢ",
	"huang":  "ㄏㄨㄤ",
	"huei":   "ㄏㄨㄟ",
	"hun":    "ㄏㄨㄣ",
	"huo":    "ㄏㄨㄛ",
	"jha":    "ㄓㄚ",
	"jhai":   "ㄓㄞ",
	"jhan":   "ㄓㄢ",
	"jhang":  "ㄓㄤ",
	"jhao":   "ㄓㄠ",
	"jhe":    "ㄓㄜ",
	"jhei":   "ㄓㄟ",
	"jhen":   "ㄓㄣ",
	"jheng":  "ㄓㄥ",
	"jhih":   "ㄓ",
	"jhong":  "ㄓㄨㄥ",
	"jhou":   "ㄓㄡ",
	"jhu":    "ㄓㄨ",
	"jhua":   "ㄓㄨㄚ",
	"jhuai":  "ㄓㄨㄞ",
	"jhuan":  "ㄓㄨㄢ",
	"jhuang": "ㄓㄨㄤ",
	"jhuei":  "ㄓㄨㄟ",
	"jhun":   "ㄓㄨㄣ",
	"jhuo":   "ㄓㄨㄛ",
	"ji":     "ㄐㄧ",
	"jia":    "ㄐㄧㄚ",
	"jian":   "ㄐㄧㄢ",
	"jiang":  "ㄐㄧㄤ",
	"jiao":   "ㄐㄧㄠ",
	"jieh":   "ㄐㄧㄝ",
	"jin":    "ㄐㄧㄣ",
	"jing":   "ㄐㄧㄥ",
	"jiou":   "ㄐㄧㄡ",
	"jyong":  "ㄐㄩㄥ",
	"jyu":    "ㄐㄩ",
	"jyuan":  "ㄐㄩㄢ",
	"jyueh":  "ㄐㄩㄝ",
	"jyun":   "ㄐㄩㄣ",
	"ka":     "ㄎㄚ",
	"kai":    "ㄎㄞ",
	"kan":    "ㄎㄢ",
	"kang":   "ㄎㄤ",
	"kao":    "ㄎㄠ",
	"ke":     "ㄎㄜ",
	"ken":    "ㄎㄣ",
	"keng":   "ㄎㄥ",
	"kong":   "ㄎㄨㄥ",
	"kou":    "ㄎㄡ",
	"ku":     "ㄎㄨ",
	"kua":    "ㄎㄨㄚ",
	"kuai":   "ㄎㄨㄞ",
	"kuan":   "ㄎㄨㄢ",
	"kuang":  "ㄎㄨㄤ",
	"kuei":   "ㄎㄨㄟ",
	"kun":    "ㄎㄨㄣ",
	"kuo":    "ㄎㄨㄛ",
	"kyang":  "ㄎㄧㄤ",
	"la":     "ㄌㄚ",
	"lai":    "ㄌㄞ",
	"lan":    "ㄌㄢ",
	"lang":   "ㄌㄤ",
	"lao":    "ㄌㄠ",
	"le":     "ㄌㄜ",
	"lei":    "ㄌㄟ",
	"leng":   "ㄌㄥ",
	"li":     "ㄌㄧ",
	"lia":    "ㄌㄧㄚ",
	"lian":   "ㄌㄧㄢ",
	"liang":  "ㄌㄧㄤ",
	"liao":   "ㄌㄧㄠ",
	"lieh":   "ㄌㄧㄝ",
	"lin":    "ㄌㄧㄣ",
	"ling":   "ㄌㄧㄥ",
	"liou":   "ㄌㄧㄡ",
	"lo":     "ㄌㄛ",
	"long":   "ㄌㄨㄥ",
	"lou":    "ㄌㄡ",
	"lu":     "ㄌㄨ",
	"luan":   "ㄌㄨㄢ",
	"lun":    "ㄌㄨㄣ",
	"luo":    "ㄌㄨㄛ",
	"lyu":    "ㄌㄩ",
	"lyuan":  "ㄌㄩㄢ",
	"lyueh":  "ㄌㄩㄝ",
	"ma":     "ㄇㄚ",
	"mai":    "ㄇㄞ",
	"man":    "ㄇㄢ",
	"mang":   "ㄇㄤ",
	"mao":    "ㄇㄠ",
	"me":     "ㄇㄜ",
	"mei":    "ㄇㄟ",
	"men":    "ㄇㄣ",
	"meng":   "ㄇㄥ",
	"mi":     "ㄇㄧ",
	"mian":   "ㄇㄧㄢ",
	"miao":   "ㄇㄧㄠ",
	"mieh":   "ㄇㄧㄝ",
	"min":    "ㄇㄧㄣ",
	"ming":   "ㄇㄧㄥ",
	"miou":   "ㄇㄧㄡ",
	"mo":     "ㄇㄛ",
	"mou":    "ㄇㄡ",
	"mu":     "ㄇㄨ",
	"na":     "ㄋㄚ",
	"nai":    "ㄋㄞ",
	"nan":    "ㄋㄢ",
	"nang":   "ㄋㄤ",
	"nao":    "ㄋㄠ",
	"ne":     "ㄋㄜ",
	"nei":    "ㄋㄟ",
	"nen":    "ㄋㄣ",
	"neng":   "ㄋㄥ",
	"ni":     "ㄋㄧ",
	"nian":   "ㄋㄧㄢ",
	"niang":  "ㄋㄧㄤ",
	"niao":   "ㄋㄧㄠ",
	"nieh":   "ㄋㄧㄝ",
	"nin":    "ㄋㄧㄣ",
	"ning":   "ㄋㄧㄥ",
	"niou":   "ㄋㄧㄡ",
	"nong":   "ㄋㄨㄥ",
	"nou":    "ㄋㄡ",
	"nu":     "ㄋㄨ",
	"nuan":   "ㄋㄨㄢ",
	"nuei":   "ㄋㄨㄟ",
	"nun":    "ㄋㄨㄣ",
	"nuo":    "ㄋㄨㄛ",
	"nyu":    "ㄋㄩ",
	"nyueh":  "ㄋㄩㄝ",
	"o":      "ㄛ",
	"ou":     "ㄡ",
	"pa":     "ㄆㄚ",
	"pai":    "ㄆㄞ",
	"pan":    "ㄆㄢ",
	"pang":   "ㄆㄤ",
	"pao":    "ㄆㄠ",
	"pei":    "ㄆㄟ",
	"pen":    "ㄆㄣ",
	"peng":   "ㄆㄥ",
	"pi":     "ㄆㄧ",
	"pia":    "ㄆㄧㄚ",
	"pian":   "ㄆㄧㄢ",
	"piao":   "ㄆㄧㄠ",
	"pieh":   "ㄆㄧㄝ",
	"pin":    "ㄆㄧㄣ",
	"ping":   "ㄆㄧㄥ",
	"po":     "ㄆㄛ",
	"pou":    "ㄆㄡ",
	"pu":     "ㄆㄨ",
	"ran":    "ㄖㄢ",
	"rang":   "ㄖㄤ",
	"rao":    "ㄖㄠ",
	"re":     "ㄖㄜ",
	"ren":    "ㄖㄣ",
	"reng":   "ㄖㄥ",
	"rih":    "ㄖ",
	"rong":   "ㄖㄨㄥ",
	"rou":    "ㄖㄡ",
	"ru":     "ㄖㄨ",
	"ruan":   "ㄖㄨㄢ",
	"ruei":   "ㄖㄨㄟ",
	"run":    "ㄖㄨㄣ",
	"ruo":    "ㄖㄨㄛ",
	"sa":     "ㄙㄚ",
	"sai":    "ㄙㄞ",
	"san":    "ㄙㄢ",
	"sang":   "ㄙㄤ",
	"sao":    "ㄙㄠ",
	"se":     "ㄙㄜ",
	"sen":    "ㄙㄣ",
	"seng":   "ㄙㄥ",
	"sha":    "ㄕㄚ",
	"shai":   "ㄕㄞ",
	"shan":   "ㄕㄢ",
	"shang":  "ㄕㄤ",
	"shao":   "ㄕㄠ",
	"she":    "ㄕㄜ",
	"shei":   "ㄕㄟ",
	"shen":   "ㄕㄣ",
	"sheng":  "ㄕㄥ",
	"shih":   "ㄕ",
	"shou":   "ㄕㄡ",
	"shu":    "ㄕㄨ",
	"shua":   "ㄕㄨㄚ",
	"shuai":  "ㄕㄨㄞ",
	"shuan":  "ㄕㄨㄢ",
	"shuang": "ㄕㄨㄤ",
	"shuei":  "ㄕㄨㄟ",
	"shun":   "ㄕㄨㄣ",
	"shuo":   "ㄕㄨㄛ",
	"si":     "ㄒㄧ",
	"sia":    "ㄒㄧㄚ",
	"sian":   "ㄒㄧㄢ",
	"siang":  "ㄒㄧㄤ",
	"siao":   "ㄒㄧㄠ",
	"sieh":   "ㄒㄧㄝ",
	"sih":    "ㄙ",
	"sihei":  "ㄙㄟ",
	"sin":    "ㄒㄧㄣ",
	"sing":   "ㄒㄧㄥ",
	"siou":   "ㄒㄧㄡ",
	"song":   "ㄙㄨㄥ",
	"sou":    "ㄙㄡ",
	"su":     "ㄙㄨ",
	"suan":   "ㄙㄨㄢ",
	"suei":   "ㄙㄨㄟ",
	"sun":    "ㄙㄨㄣ",
	"suo":    "ㄙㄨㄛ",
	"syong":  "ㄒㄩㄥ",
	"syu":    "ㄒㄩ",
	"syuan":  "ㄒㄩㄢ",
	"syueh":  "ㄒㄩㄝ",
	"syun":   "ㄒㄩㄣ",
	"ta":     "ㄊㄚ",
	"tai":    "ㄊㄞ",
	"tan":    "ㄊㄢ",
	"tang":   "ㄊㄤ",
	"tao":    "ㄊㄠ",
	"te":     "ㄊㄜ",
	"teng":   "ㄊㄥ",
	"ti":     "ㄊㄧ",
	"tian":   "ㄊㄧㄢ",
	"tiao":   "ㄊㄧㄠ",
	"tieh":   "ㄊㄧㄝ",
	"ting":   "ㄊㄧㄥ",
	"tong":   "ㄊㄨㄥ",
	"tou":    "ㄊㄡ",
	"tsa":    "ㄘㄚ",
	"tsai":   "ㄘㄞ",
	"tsan":   "ㄘㄢ",
	"tsang":  "ㄘㄤ",
	"tsao":   "ㄘㄠ",
	"tse":    "ㄘㄜ",
	"tsen":   "ㄘㄣ",
	"tseng":  "ㄘㄥ",
	"tsih":   "ㄘ",
	"tsong":  "ㄘㄨㄥ",
	"tsou":   "ㄘㄡ",
	"tsu":    "ㄘㄨ",
	"tsuan":  "ㄘㄨㄢ",
	"tsuei":  "ㄘㄨㄟ",
	"tsun":   "ㄘㄨㄣ",
	"tsuo":   "ㄘㄨㄛ",
	"tu":     "ㄊㄨ",
	"tuan":   "ㄊㄨㄢ",
	"tuei":   "ㄊㄨㄟ",
	"tun":    "ㄊㄨㄣ",
	"tuo":    "ㄊㄨㄛ",
	"wa":     "ㄨㄚ",
	"wai":    "ㄨㄞ",
	"wan":    "ㄨㄢ",
	"wang":   "ㄨㄤ",
	"wei":    "ㄨㄟ",
	"wo":     "ㄨㄛ",
	"wong":   "ㄨㄥ",
	"wu":     "ㄨ",
	"wun":    "ㄨㄣ",
	"ya":     "ㄧㄚ",
	"yai":    "ㄧㄞ",
	"yan":    "ㄧㄢ",
	"yang":   "ㄧㄤ",
	"yao":    "ㄧㄠ",
	"yeh":    "ㄧㄝ",
	"yi":     "ㄧ",
	"yin":    "ㄧㄣ",
	"ying":   "ㄧㄥ",
	"yo":     "ㄧㄛ",
	"yong":   "ㄩㄥ",
	"you":    "ㄧㄡ",
	"yu":     "ㄩ",
	"yuan":   "ㄩㄢ",
	"yueh":   "ㄩㄝ",
	"yun":    "ㄩㄣ",
	"za":     "ㄗㄚ",
	"zai":    "ㄗㄞ",
	"zan":    "ㄗㄢ",
	"zang":   "ㄗㄤ",
	"zao":    "ㄗㄠ",
	"ze":     "ㄗㄜ",
	"zei":    "ㄗㄟ",
	"zen":    "ㄗㄣ",
	"zeng":   "ㄗㄥ",
	"zih":    "ㄗ",
	"zong":   "ㄗㄨㄥ",
	"zou":    "ㄗㄡ",
	"zu":     "ㄗㄨ",
	"zuan":   "ㄗㄨㄢ",
	"zuei":   "ㄗㄨㄟ",
	"zun":    "ㄗㄨㄣ",
	"zuo":    "ㄗㄨㄛ",
}

var universalTable = map[string]string{
	"a":      "ㄚ",
	"ai":     "ㄞ",
	"an":     "ㄢ",
	"ang":    "ㄤ",
	"ao":     "ㄠ",
	"ba":     "ㄅㄚ",
	"bai":    "ㄅㄞ",
	"ban":    "ㄅㄢ",
	"bang":   "ㄅㄤ",
	"bao":    "ㄅㄠ",
	"bei":    "ㄅㄟ",
	"ben":    "ㄅㄣ",
	"beng":   "ㄅㄥ",
	"bi":     "ㄅㄧ",
	"bian":   "ㄅㄧㄢ",
	"biang":  "ㄅㄧㄤ",
	"biao":   "ㄅㄧㄠ",
	"bie":    "ㄅㄧㄝ",
	"bin":    "ㄅㄧㄣ",
	"bing":   "ㄅㄧㄥ",
	"bo":     "ㄅㄛ",
	"bu":     "ㄅㄨ",
	"c":      "ㄑ",
	"ca":     "ㄘㄚ",
	"cai":    "ㄘㄞ",
	"can":    "ㄘㄢ",
	"cang":   "ㄘㄤ",
	"cao":    "ㄘㄠ",
	"ce":     "ㄘㄜ",
	"cen":    "ㄘㄣ",
	"ceng":   "ㄘㄥ",
	"cha":    "ㄔㄚ",
	"chai":   "ㄔㄞ",
	"chan":   "ㄔㄢ",
	"chang":  "ㄔㄤ",
	"chao":   "ㄔㄠ",
	"che":    "ㄔㄜ",
	"chen":   "ㄔㄣ",
	"cheng":  "ㄔㄥ",
	"chih":   "ㄔ",
	"chong":  "ㄔㄨㄥ",
	"chou":   "ㄔㄡ",
	"chu":    "ㄔㄨ",
	"chua":   "ㄔㄨㄚ",
	"chuai":  "ㄔㄨㄞ",
	"chuan":  "ㄔㄨㄢ",
	"chuang": "ㄔㄨㄤ",
	"chuei":  "ㄔㄨㄟ",
	"chun":   "ㄔㄨㄣ",
	"chuo":   "ㄔㄨㄛ",
	"ci":     "ㄑㄧ",
	"cia":    "ㄑㄧㄚ",
	"cian":   "ㄑㄧㄢ",
	"ciang":  "ㄑㄧㄤ",
	"ciao":   "ㄑㄧㄠ",
	"cie":    "ㄑㄧㄝ",
	"cih":    "ㄘ",
	"cin":    "ㄑㄧㄣ",
	"cing":   "ㄑㄧㄥ",
	"ciou":   "ㄑㄧㄡ",
	"cong":   "ㄘㄨㄥ",
	"cou":    "ㄘㄡ",
	"cu":     "ㄘㄨ",
	"cuan":   "ㄘㄨㄢ",
	"cuei":   "ㄘㄨㄟ",
	"cun":    "ㄘㄨㄣ",
	"cuo":    "ㄘㄨㄛ",
	"cyong":  "ㄑㄩㄥ",
	"cyu":    "ㄑㄩ",
	"cyuan":  "ㄑㄩㄢ",
	"cyue":   "ㄑㄩㄝ",
	"cyun":   "ㄑㄩㄣ",
	"da":     "ㄉㄚ",
	"dai":    "ㄉㄞ",
	"dan":    "ㄉㄢ",
	"dang":   "ㄉㄤ",
	"dao":    "ㄉㄠ",
	"de":     "ㄉㄜ",
	"dei":    "ㄉㄟ",
	"den":    "ㄉㄣ",
	"deng":   "ㄉㄥ",
	"di":     "ㄉㄧ",
	"dia":    "ㄉㄧㄚ",
	"dian":   "ㄉㄧㄢ",
	"diao":   "ㄉㄧㄠ",
	"die":    "ㄉㄧㄝ",
	"ding":   "ㄉㄧㄥ",
	"diou":   "ㄉㄧㄡ",
	"dong":   "ㄉㄨㄥ",
	"dou":    "ㄉㄡ",
	"du":     "ㄉㄨ",
	"duan":   "ㄉㄨㄢ",
	"duang":  "ㄉㄨㄤ",
	"duei":   "ㄉㄨㄟ",
	"dun":    "ㄉㄨㄣ",
	"duo":    "ㄉㄨㄛ",
	"e":      "ㄜ",
	"eh":     "ㄝ",
	"ei":     "ㄟ",
	"en":     "ㄣ",
	"eng":    "ㄥ",
	"er":     "ㄦ",
	"fa":     "ㄈㄚ",
	"fan":    "ㄈㄢ",
	"fang":   "ㄈㄤ",
	"fei":    "ㄈㄟ",
	"fen":    "ㄈㄣ",
	"fiao":   "ㄈㄧㄠ",
	"fo":     "ㄈㄛ",
	"fong":   "ㄈㄥ",
	"fou":    "ㄈㄡ",
	"fu":     "ㄈㄨ",
	"ga":     "ㄍㄚ",
	"gai":    "ㄍㄞ",
	"gan":    "ㄍㄢ",
	"gang":   "ㄍㄤ",
	"gao":    "ㄍㄠ",
	"ge":     "ㄍㄜ",
	"gei":    "ㄍㄟ",
	"gen":    "ㄍㄣ",
	"geng":   "ㄍㄥ",
	"gin":    "ㄍㄧㄣ",
	"gong":   "ㄍㄨㄥ",
	"gou":    "ㄍㄡ",
	"gu":     "ㄍㄨ",
	"gua":    "ㄍㄨㄚ",
	"guai":   "ㄍㄨㄞ",
	"guan":   "ㄍㄨㄢ",
	"guang":  "ㄍㄨㄤ",
	"gue":    "ㄍㄨㄜ",
	"guei":   "ㄍㄨㄟ",
	"gun":    "ㄍㄨㄣ",
	"guo":    "ㄍㄨㄛ",
	"gyao":   "ㄍㄧㄠ",
	"ha":     "ㄏㄚ",
	"hai":    "ㄏㄞ",
	"han":    "ㄏㄢ",
	"hang":   "ㄏㄤ",
	"hao":    "ㄏㄠ",
	"he":     "ㄏㄜ",
	"hei":    "ㄏㄟ",
	"hen":    "ㄏㄣ",
	"heng":   "ㄏㄥ",
	"hong":   "ㄏㄨㄥ",
	"hou":    "ㄏㄡ",
	"hu":     "ㄏㄨ",
	"hua":    "ㄏㄨㄚ",
	"huai":   "ㄏㄨㄞ",
	"huan":   "ㄏㄨㄢ",
	"huang":  "ㄏㄨㄤ",
	"huei":   "ㄏㄨㄟ",
	"hun":    "ㄏㄨㄣ",
	"huo":    "ㄏㄨㄛ",
	"jha":    "ㄓㄚ",
	"jhai":   "ㄓㄞ",
	"jhan":   "ㄓㄢ",
	"jhang":  "ㄓㄤ",
	"jhao":   "ㄓㄠ",
	"jhe":    "ㄓㄜ",
	"jhei":   "ㄓㄟ",
	"jhen":   "ㄓㄣ",
	"jheng":  "ㄓㄥ",
	"jhih":   "ㄓ",
	"jhong":  "ㄓㄨㄥ",
	"jhou":   "ㄓㄡ",
	"jhu":    "ㄓㄨ",
	"jhua":   "ㄓㄨㄚ",
	"jhuai":  "ㄓㄨㄞ",
	"jhuan":  "ㄓㄨㄢ",
	"jhuang": "ㄓㄨㄤ",
	"jhuei":  "ㄓㄨㄟ",
	"jhun":   "ㄓㄨㄣ",
	"jhuo":   "ㄓㄨㄛ",
	"ji":     "ㄐㄧ",
	"jia":    "ㄐㄧㄚ",
	"jian":   "ㄐㄧㄢ",
	"jiang":  "ㄐㄧㄤ",
	"jiao":   "ㄐㄧㄠ",
	"jie":    "ㄐㄧㄝ",
	"jin":    "ㄐㄧㄣ",
	"jing":   "ㄐㄧㄥ",
	"jiou":   "ㄐㄧㄡ",
	"jyong":  "ㄐㄩㄥ",
	"jyu":    "ㄐㄩ",
	"jyuan":  "ㄐㄩㄢ",
	"jyue":   "ㄐㄩㄝ",
	"jyun":   "ㄐㄩㄣ",
	"ka":     "ㄎㄚ",
	"kai":    "ㄎㄞ",
	"kan":    "ㄎㄢ",
	"kang":   "ㄎㄤ",
	"kao":    "ㄎㄠ",
	"ke":     "ㄎㄜ",
	"ken":    "ㄎㄣ",
	"keng":   "ㄎㄥ",
	"kong":   "ㄎㄨㄥ",
	"kou":    "ㄎㄡ",
	"ku":     "ㄎㄨ",
	"kua":    "ㄎㄨㄚ",
	"kuai":   "ㄎㄨㄞ",
	"kuan":   "ㄎㄨㄢ",
	"kuang":  "ㄎㄨㄤ",
	"kuei":   "ㄎㄨㄟ",
	"kun":    "ㄎㄨㄣ",
	"kuo":    "ㄎㄨㄛ",
	"kyang":  "ㄎㄧㄤ",
	"la":     "ㄌㄚ",
	"lai":    "ㄌㄞ",
	"lan":    "ㄌㄢ",
	"lang":   "ㄌㄤ",
	"lao":    "ㄌㄠ",
	"le":     "ㄌㄜ",
	"lei":    "ㄌㄟ",
	"leng":   "ㄌㄥ",
	"li":     "ㄌㄧ",
	"lia":    "ㄌㄧㄚ",
	"lian":   "ㄌㄧㄢ",
	"liang":  "ㄌㄧㄤ",
	"liao":   "ㄌㄧㄠ",
	"lie":    "ㄌㄧㄝ",
	"lin":    "ㄌㄧㄣ",
	"ling":   "ㄌㄧㄥ",
	"liou":   "ㄌㄧㄡ",
	"lo":     "ㄌㄛ",
	"long":   "ㄌㄨㄥ",
	"lou":    "ㄌㄡ",
	"lu":     "ㄌㄨ",
	"luan":   "ㄌㄨㄢ",
	"lun":    "ㄌㄨㄣ",
	"luo":    "ㄌㄨㄛ",
	"lyu":    "ㄌㄩ",
	"lyuan":  "ㄌㄩㄢ",
	"lyue":   "ㄌㄩㄝ",
	"ma":     "ㄇㄚ",
	"mai":    "ㄇㄞ",
	"man":    "ㄇㄢ",
	"mang":   "ㄇㄤ",
	"mao":    "ㄇㄠ",
	"me":     "ㄇㄜ",
	"mei":    "ㄇㄟ",
	"men":    "ㄇㄣ",
	"meng":   "ㄇㄥ",
	"mi":     "ㄇㄧ",
	"mian":   "ㄇㄧㄢ",
	"miao":   "ㄇㄧㄠ",
	"mie":    "ㄇㄧㄝ",
	"min":    "ㄇㄧㄣ",
	"ming":   "ㄇㄧㄥ",
	"miou":   "ㄇㄧㄡ",
	"mo":     "ㄇㄛ",
	"mou":    "ㄇㄡ",
	"mu":     "ㄇㄨ",
	"na":     "ㄋㄚ",
	"nai":    "ㄋㄞ",
	"nan":    "ㄋㄢ",
	"nang":   "ㄋㄤ",
	"nao":    "ㄋㄠ",
	"ne":     "ㄋㄜ",
	"nei":    "ㄋㄟ",
	"nen":    "ㄋㄣ",
	"neng":   "ㄋㄥ",
	"ni":     "ㄋㄧ",
	"nian":   "ㄋㄧㄢ",
	"niang":  "ㄋㄧㄤ",
	"niao":   "ㄋㄧㄠ",
	"nie":    "ㄋㄧㄝ",
	"nin":    "ㄋㄧㄣ",
	"ning":   "ㄋㄧㄥ",
	"niou":   "ㄋㄧㄡ",
	"nong":   "ㄋㄨㄥ",
	"nou":    "ㄋㄡ",
	"nu":     "ㄋㄨ",
	"nuan":   "ㄋㄨㄢ",
	"nuei":   "ㄋㄨㄟ",
	"nun":    "ㄋㄨㄣ",
	"nuo":    "ㄋㄨㄛ",
	"nyu":    "ㄋㄩ",
	"nyue":   "ㄋㄩㄝ",
	"o":      "ㄛ",
	"ou":     "ㄡ",
	"pa":     "ㄆㄚ",
	"pai":    "ㄆㄞ",
	"pan":    "ㄆㄢ",
	"pang":   "ㄆㄤ",
	"pao":    "ㄆㄠ",
	"pei":    "ㄆㄟ",
	"pen":    "ㄆㄣ",
	"peng":   "ㄆㄥ",
	"pi":     "ㄆㄧ",
	"pia":    "ㄆㄧㄚ",
	"pian":   "ㄆㄧㄢ",
	"piao":   "ㄆㄧㄠ",
	"pie":    "ㄆㄧㄝ",
	"pin":    "ㄆㄧㄣ",
	"ping":   "ㄆㄧㄥ",
	"po":     "ㄆㄛ",
	"pou":    "ㄆㄡ",
	"pu":     "ㄆㄨ",
	"ran":    "ㄖㄢ",
	"rang":   "ㄖㄤ",
	"rao":    "ㄖㄠ",
	"re":     "ㄖㄜ",
	"ren":    "ㄖㄣ",
	"reng":   "ㄖㄥ",
	"rih":    "ㄖ",
	"rong":   "ㄖㄨㄥ",
	"rou":    "ㄖㄡ",
	"ru":     "ㄖㄨ",
	"ruan":   "ㄖㄨㄢ",
	"ruei":   "ㄖㄨㄟ",
	"run":    "ㄖㄨㄣ",
	"ruo":    "ㄖㄨㄛ",
	"sa":     "ㄙㄚ",
	"sai":    "ㄙㄞ",
	"san":    "ㄙㄢ",
	"sang":   "ㄙㄤ",
	"sao":    "ㄙㄠ",
	"se":     "ㄙㄜ",
	"sen":    "ㄙㄣ",
	"seng":   "ㄙㄥ",
	"sha":    "ㄕㄚ",
	"shai":   "ㄕㄞ",
	"shan":   "ㄕㄢ",
	"shang":  "ㄕㄤ",
	"shao":   "ㄕㄠ",
	"she":    "ㄕㄜ",
	"shei":   "ㄕㄟ",
	"shen":   "ㄕㄣ",
	"sheng":  "ㄕㄥ",
	"shih":   "ㄕ",
	"shou":   "ㄕㄡ",
	"shu":    "ㄕㄨ",
	"shua":   "ㄕㄨㄚ",
	"shuai":  "ㄕㄨㄞ",
	"shuan":  "ㄕㄨㄢ",
	"shuang": "ㄕㄨㄤ",
	"shuei":  "ㄕㄨㄟ",
	"shun":   "ㄕㄨㄣ",
	"shuo":   "ㄕㄨㄛ",
	"si":     "ㄒㄧ",
	"sia":    "ㄒㄧㄚ",
	"sian":   "ㄒㄧㄢ",
	"siang":  "ㄒㄧㄤ",
	"siao":   "ㄒㄧㄠ",
	"sie":    "ㄒㄧㄝ",
	"sih":    "ㄙ",
	"sihei":  "ㄙㄟ",
	"sin":    "ㄒㄧㄣ",
	"sing":   "ㄒㄧㄥ",
	"siou":   "ㄒㄧㄡ",
	"song":   "ㄙㄨㄥ",
	"sou":    "ㄙㄡ",
	"su":     "ㄙㄨ",
	"suan":   "ㄙㄨㄢ",
	"suei":   "ㄙㄨㄟ",
	"sun":    "ㄙㄨㄣ",
	"suo":    "ㄙㄨㄛ",
	"syong":  "ㄒㄩㄥ",
	"syu":    "ㄒㄩ",
	"syuan":  "ㄒㄩㄢ",
	"syue":   "ㄒㄩㄝ",
	"syun":   "ㄒㄩㄣ",
	"ta":     "ㄊㄚ",
	"tai":    "ㄊㄞ",
	"tan":    "ㄊㄢ",
	"tang":   "ㄊㄤ",
	"tao":    "ㄊㄠ",
	"te":     "ㄊㄜ",
	"teng":   "ㄊㄥ",
	"ti":     "ㄊㄧ",
	"tian":   "ㄊㄧㄢ",
	"tiao":   "ㄊㄧㄠ",
	"tie":    "ㄊㄧㄝ",
	"ting":   "ㄊㄧㄥ",
	"tong":   "ㄊㄨㄥ",
	"tou":    "ㄊㄡ",
	"tu":     "ㄊㄨ",
	"tuan":   "ㄊㄨㄢ",
	"tuei":   "ㄊㄨㄟ",
	"tun":    "ㄊㄨㄣ",
	"tuo":    "ㄊㄨㄛ",
	"wa":     "ㄨㄚ",
	"wai":    "ㄨㄞ",
	"wan":    "ㄨㄢ",
	"wang":   "ㄨㄤ",
	"wei":    "ㄨㄟ",
	"wo":     "ㄨㄛ",
	"wong":   "ㄨㄥ",
	"wu":     "ㄨ",
	"wun":    "ㄨㄣ",
	"yai":    "ㄧㄞ",
	"yan":    "ㄧㄢ",
	"yang":   "ㄧㄤ",
	"yao":    "ㄧㄠ",
	"ye":     "ㄧㄝ",
	"yi":     "ㄧ",
	"yia":    "ㄧㄚ",
	"yin":    "ㄧㄣ",
	"ying":   "ㄧㄥ",
	"yo":     "ㄧㄛ",
	"yong":   "ㄩㄥ",
	"you":    "ㄧㄡ",
	"yu":     "ㄩ",
	"yuan":   "ㄩㄢ",
	"yue":    "ㄩㄝ",
	"yun":    "ㄩㄣ",
	"za":     "ㄗㄚ",
	"zai":    "ㄗㄞ",
	"zan":    "ㄗㄢ",
	"zang":   "ㄗㄤ",
	"zao":    "ㄗㄠ",
	"ze":     "ㄗㄜ",
	"zei":    "ㄗㄟ",
	"zen":    "ㄗㄣ",
	"zeng":   "ㄗㄥ",
	"zih":    "ㄗ",
	"zong":   "ㄗㄨㄥ",
	"zou":    "ㄗㄡ",
	"zu":     "ㄗㄨ",
	"zuan":   "ㄗㄨㄢ",
	"zuei":   "ㄗㄨㄟ",
	"zun":    "ㄗㄨㄣ",
	"zuo":    "ㄗㄨㄛ",
}

var wadeGilesTable = map[string]string{
	"a":       "ㄚ",
	"ai":      "ㄞ",
	"an":      "ㄢ",
	"ang":     "ㄤ",
	"ao":      "ㄠ",
	"ch'a":    "ㄔㄚ",
	"ch'ai":   "ㄔㄞ",
	"ch'an":   "ㄔㄢ",
	"ch'ang":  "ㄔㄤ",
	"ch'ao":   "ㄔㄠ",
	"ch'e":    "ㄔㄜ",
	"ch'en":   "ㄔㄣ",
	"ch'eng":  "ㄔㄥ",
	"ch'i":    "ㄑㄧ",
	"ch'ia":   "ㄑㄧㄚ",
	"ch'iang": "ㄑㄧㄤ",
	"ch'iao":  "ㄑㄧㄠ",
	"ch'ieh":  "ㄑㄧㄝ",
	"ch'ien":  "ㄑㄧㄢ",
	"ch'ih":   "ㄔ",
	"ch'in":   "ㄑㄧㄣ",
	"ch'ing":  "ㄑㄧㄥ",
	"ch'iu":   "ㄑㄧㄡ",
	"ch'iung": "ㄑㄩㄥ",
	"ch'o":    "ㄔㄨㄛ",
	"ch'ou":   "ㄔㄡ",
	"ch'u":    "ㄔㄨ",
	"ch'ua":   "ㄔㄨㄚ",
	"ch'uai":  "ㄔㄨㄞ",
	"ch'uan":  "ㄔㄨㄢ",
	"ch'uang": "ㄔㄨㄤ",
	"ch'ui":   "ㄔㄨㄟ",
	"ch'un":   "ㄔㄨㄣ",
	"ch'ung":  "ㄔㄨㄥ",
	"ch'v":    "ㄑㄩ",
	"ch'van":  "ㄑㄩㄢ",
	"ch'veh":  "ㄑㄩㄝ",
	"ch'vn":   "ㄑㄩㄣ",
	"cha":     "ㄓㄚ",
	"chai":    "ㄓㄞ",
	"chan":    "ㄓㄢ",
	"chang":   "ㄓㄤ",
	"chao":    "ㄓㄠ",
	"che":     "ㄓㄜ",
	"chei":    "ㄓㄟ",
	"chen":    "ㄓㄣ",
	"cheng":   "ㄓㄥ",
	"chi":     "ㄐㄧ",
	"chia":    "ㄐㄧㄚ",
	"chiang":  "ㄐㄧㄤ",
	"chiao":   "ㄐㄧㄠ",
	"chieh":   "ㄐㄧㄝ",
	"chien":   "ㄐㄧㄢ",
	"chih":    "ㄓ",
	"chin":    "ㄐㄧㄣ",
	"ching":   "ㄐㄧㄥ",
	"chiu":    "ㄐㄧㄡ",
	"chiung":  "ㄐㄩㄥ",
	"cho":     "ㄓㄨㄛ",
	"chou":    "ㄓㄡ",
	"chu":     "ㄓㄨ",
	"chua":    "ㄓㄨㄚ",
	"chuai":   "ㄓㄨㄞ",
	"chuan":   "ㄓㄨㄢ",
	"chuang":  "ㄓㄨㄤ",
	"chui":    "ㄓㄨㄟ",
	"chun":    "ㄓㄨㄣ",
	"chung":   "ㄓㄨㄥ",
	"chv":     "ㄐㄩ",
	"chvan":   "ㄐㄩㄢ",
	"chveh":   "ㄐㄩㄝ",
	"chvn":    "ㄐㄩㄣ",
	"e":       "ㄜ",
	"ei":      "ㄟ",
	"en":      "ㄣ",
	"erh":     "ㄦ",
	"fa":      "ㄈㄚ",
	"fan":     "ㄈㄢ",
	"fang":    "ㄈㄤ",
	"fei":     "ㄈㄟ",
	"fen":     "ㄈㄣ",
	"feng":    "ㄈㄥ",
	"fo":      "ㄈㄛ",
	"fou":     "ㄈㄡ",
	"fu":      "ㄈㄨ",
	"ha":      "ㄏㄚ",
	"hai":     "ㄏㄞ",
	"han":     "ㄏㄢ",
	"hang":    "ㄏㄤ",
	"hao":     "ㄏㄠ",
	"hei":     "ㄏㄟ",
	"hen":     "ㄏㄣ",
	"heng":    "ㄏㄥ",
	"ho":      "ㄏㄜ",
	"hou":     "ㄏㄡ",
	"hsi":     "ㄒㄧ",
	"hsia":    "ㄒㄧㄚ",
	"hsiang":  "ㄒㄧㄤ",
	"hsiao":   "ㄒㄧㄠ",
	"hsieh":   "ㄒㄧㄝ",
	"hsien":   "ㄒㄧㄢ",
	"hsin":    "ㄒㄧㄣ",
	"hsing":   "ㄒㄧㄥ",
	"hsiu":    "ㄒㄧㄡ",
	"hsiung":  "ㄒㄩㄥ",
	"hsv":     "ㄒㄩ",
	"hsvan":   "ㄒㄩㄢ",
	"hsveh":   "ㄒㄩㄝ",
	"hsvn":    "ㄒㄩㄣ",
	"hu":      "ㄏㄨ",
	"hua":     "ㄏㄨㄚ",
	"huai":    "ㄏㄨㄞ",
	"huan":    "ㄏㄨㄢ",
	"huang":   "ㄏㄨㄤ",
	"hui":     "ㄏㄨㄟ",
	"hun":     "ㄏㄨㄣ",
	"hung":    "ㄏㄨㄥ",
	"huo":     "ㄏㄨㄛ",
	"i":       "ㄧ",
	"jan":     "ㄖㄢ",
	"jang":    "ㄖㄤ",
	"jao":     "ㄖㄠ",
	"je":      "ㄖㄜ",
	"jen":     "ㄖㄣ",
	"jeng":    "ㄖㄥ",
	"jih":     "ㄖ",
	"jo":      "ㄖㄨㄛ",
	"jou":     "ㄖㄡ",
	"ju":      "ㄖㄨ",
	"juan":    "ㄖㄨㄢ",
	"jui":     "ㄖㄨㄟ",
	"jun":     "ㄖㄨㄣ",
	"jung":    "ㄖㄨㄥ",
	"k'a":     "ㄎㄚ",
	"k'ai":    "ㄎㄞ",
	"k'an":    "ㄎㄢ",
	"k'ang":   "ㄎㄤ",
	"k'ao":    "ㄎㄠ",
	"k'en":    "ㄎㄣ",
	"k'eng":   "ㄎㄥ",
	"k'o":     "ㄎㄜ",
	"k'ou":    "ㄎㄡ",
	"k'u":     "ㄎㄨ",
	"k'ua":    "ㄎㄨㄚ",
	"k'uai":   "ㄎㄨㄞ",
	"k'uan":   "ㄎㄨㄢ",
	"k'uang":  "ㄎㄨㄤ",
	"k'uei":   "ㄎㄨㄟ",
	"k'un":    "ㄎㄨㄣ",
	"k'ung":   "ㄎㄨㄥ",
	"k'uo":    "ㄎㄨㄛ",
	"ka":      "ㄍㄚ",
	"kai":     "ㄍㄞ",
	"kan":     "ㄍㄢ",
	"kang":    "ㄍㄤ",
	"kao":     "ㄍㄠ",
	"kei":     "ㄍㄟ",
	"ken":     "ㄍㄣ",
	"keng":    "ㄍㄥ",
	"ko":      "ㄍㄜ",
	"kou":     "ㄍㄡ",
	"ku":      "ㄍㄨ",
	"kua":     "ㄍㄨㄚ",
	"kuai":    "ㄍㄨㄞ",
	"kuan":    "ㄍㄨㄢ",
	"kuang":   "ㄍㄨㄤ",
	"kuei":    "ㄍㄨㄟ",
	"kun":     "ㄍㄨㄣ",
	"kung":    "ㄍㄨㄥ",
	"kuo":     "ㄍㄨㄛ",
	"la":      "ㄌㄚ",
	"lai":     "ㄌㄞ",
	"lan":     "ㄌㄢ",
	"lang":    "ㄌㄤ",
	"lao":     "ㄌㄠ",
	"le":      "ㄌㄜ",
	"lei":     "ㄌㄟ",
	"leng":    "ㄌㄥ",
	"li":      "ㄌㄧ",
	"lia":     "ㄌㄧㄚ",
	"liang":   "ㄌㄧㄤ",
	"liao":    "ㄌㄧㄠ",
	"lieh":    "ㄌㄧㄝ",
	"lien":    "ㄌㄧㄢ",
	"lin":     "ㄌㄧㄣ",
	"ling":    "ㄌㄧㄥ",
	"liu":     "ㄌㄧㄡ",
	"lo":      "ㄌㄨㄛ",
	"lou":     "ㄌㄡ",
	"lu":      "ㄌㄨ",
	"luan":    "ㄌㄨㄢ",
	"lun":     "ㄌㄨㄣ",
	"lung":    "ㄌㄨㄥ",
	"lv":      "ㄌㄩ",
	"lveh":    "ㄌㄩㄝ",
	"lvn":     "ㄌㄩㄣ",
	"ma":      "ㄇㄚ",
	"mai":     "ㄇㄞ",
	"man":     "ㄇㄢ",
	"mang":    "ㄇㄤ",
	"mao":     "ㄇㄠ",
	"me":      "ㄇㄜ",
	"mei":     "ㄇㄟ",
	"men":     "ㄇㄣ",
	"meng":    "ㄇㄥ",
	"mi":      "ㄇㄧ",
	"miao":    "ㄇㄧㄠ",
	"mieh":    "ㄇㄧㄝ",
	"mien":    "ㄇㄧㄢ",
	"min":     "ㄇㄧㄣ",
	"ming":    "ㄇㄧㄥ",
	"miu":     "ㄇㄧㄡ",
	"mo":      "ㄇㄛ",
	"mou":     "ㄇㄡ",
	"mu":      "ㄇㄨ",
	"na":      "ㄋㄚ",
	"nai":     "ㄋㄞ",
	"nan":     "ㄋㄢ",
	"nang":    "ㄋㄤ",
	"nao":     "ㄋㄠ",
	"ne":      "ㄋㄜ",
	"nei":     "ㄋㄟ",
	"nen":     "ㄋㄣ",
	"neng":    "ㄋㄥ",
	"ni":      "ㄋㄧ",
	"nia":     "ㄋㄧㄚ",
	"niang":   "ㄋㄧㄤ",
	"niao":    "ㄋㄧㄠ",
	"nieh":    "ㄋㄧㄝ",
	"nien":    "ㄋㄧㄢ",
	"nin":     "ㄋㄧㄣ",
	"ning":    "ㄋㄧㄥ",
	"niu":     "ㄋㄧㄡ",
	"no":      "ㄋㄨㄛ",
	"nou":     "ㄋㄡ",
	"nu":      "ㄋㄨ",
	"nuan":    "ㄋㄨㄢ",
	"nun":     "ㄋㄨㄣ",
	"nung":    "ㄋㄨㄥ",
	"nv":      "ㄋㄩ",
	"nveh":    "ㄋㄩㄝ",
	"ou":      "ㄡ",
	"p'a":     "ㄆㄚ",
	"p'ai":    "ㄆㄞ",
	"p'an":    "ㄆㄢ",
	"p'ang":   "ㄆㄤ",
	"p'ao":    "ㄆㄠ",
	"p'ei":    "ㄆㄟ",
	"p'en":    "ㄆㄣ",
	"p'eng":   "ㄆㄥ",
	"p'i":     "ㄆㄧ",
	"p'iao":   "ㄆㄧㄠ",
	"p'ieh":   "ㄆㄧㄝ",
	"p'ien":   "ㄆㄧㄢ",
	"p'in":    "ㄆㄧㄣ",
	"p'ing":   "ㄆㄧㄥ",
	"p'o":     "ㄆㄛ",
	"p'ou":    "ㄆㄡ",
	"p'u":     "ㄆㄨ",
	"pa":      "ㄅㄚ",
	"pai":     "ㄅㄞ",
	"pan":     "ㄅㄢ",
	"pang":    "ㄅㄤ",
	"pao":     "ㄅㄠ",
	"pei":     "ㄅㄟ",
	"pen":     "ㄅㄣ",
	"peng":    "ㄅㄥ",
	"pi":      "ㄅㄧ",
	"piao":    "ㄅㄧㄠ",
	"pieh":    "ㄅㄧㄝ",
	"pien":    "ㄅㄧㄢ",
	"pin":     "ㄅㄧㄣ",
	"ping":    "ㄅㄧㄥ",
	"po":      "ㄅㄛ",
	"pu":      "ㄅㄨ",
	"sa":      "ㄙㄚ",
	"sai":     "ㄙㄞ",
	"san":     "ㄙㄢ",
	"sang":    "ㄙㄤ",
	"sao":     "ㄙㄠ",
	"se":      "ㄙㄜ",
	"sei":     "ㄙㄟ",
	"sen":     "ㄙㄣ",
	"seng":    "ㄙㄥ",
	"sha":     "ㄕㄚ",
	"shai":    "ㄕㄞ",
	"shan":    "ㄕㄢ",
	"shang":   "ㄕㄤ",
	"shao":    "ㄕㄠ",
	"she":     "ㄕㄜ",
	"shei":    "ㄕㄟ",
	"shen":    "ㄕㄣ",
	"sheng":   "ㄕㄥ",
	"shih":    "ㄕ",
	"shou":    "ㄕㄡ",
	"shu":     "ㄕㄨ",
	"shua":    "ㄕㄨㄚ",
	"shuai":   "ㄕㄨㄞ",
	"shuan":   "ㄕㄨㄢ",
	"shuang":  "ㄕㄨㄤ",
	"shui":    "ㄕㄨㄟ",
	"shun":    "ㄕㄨㄣ",
	"shung":   "ㄕㄨㄥ",
	"shuo":    "ㄕㄨㄛ",
	"so":      "ㄙㄨㄛ",
	"sou":     "ㄙㄡ",
	"ssu":     "ㄙ",
	"su":      "ㄙㄨ",
	"suan":    "ㄙㄨㄢ",
	"sui":     "ㄙㄨㄟ",
	"sun":     "ㄙㄨㄣ",
	"sung":    "ㄙㄨㄥ",
	"t'a":     "ㄊㄚ",
	"t'ai":    "ㄊㄞ",
	"t'an":    "ㄊㄢ",
	"t'ang":   "ㄊㄤ",
	"t'ao":    "ㄊㄠ",
	"t'e":     "ㄊㄜ",
	"t'eng":   "ㄊㄥ",
	"t'i":     "ㄊㄧ",
	"t'iao":   "ㄊㄧㄠ",
	"t'ieh":   "ㄊㄧㄝ",
	"t'ien":   "ㄊㄧㄢ",
	"t'ing":   "ㄊㄧㄥ",
	"t'o":     "ㄊㄨㄛ",
	"t'ou":    "ㄊㄡ",
	"t'u":     "ㄊㄨ",
	"t'uan":   "ㄊㄨㄢ",
	"t'ui":    "ㄊㄨㄟ",
	"t'un":    "ㄊㄨㄣ",
	"t'ung":   "ㄊㄨㄥ",
	"ta":      "ㄉㄚ",
	"tai":     "ㄉㄞ",
	"tan":     "ㄉㄢ",
	"tang":    "ㄉㄤ",
	"tao":     "ㄉㄠ",
	"te":      "ㄉㄜ",
	"tei":     "ㄉㄟ",
	"ten":     "ㄉㄣ",
	"teng":    "ㄉㄥ",
	"ti":      "ㄉㄧ",
	"tiang":   "ㄉㄧㄤ",
	"tiao":    "ㄉㄧㄠ",
	"tieh":    "ㄉㄧㄝ",
	"tien":    "ㄉㄧㄢ",
	"ting":    "ㄉㄧㄥ",
	"tiu":     "ㄉㄧㄡ",
	"to":      "ㄉㄨㄛ",
	"tou":     "ㄉㄡ",
	"ts'a":    "ㄘㄚ",
	"ts'ai":   "ㄘㄞ",
	"ts'an":   "ㄘㄢ",
	"ts'ang":  "ㄘㄤ",
	"ts'ao":   "ㄘㄠ",
	"ts'e":    "ㄘㄜ",
	"ts'en":   "ㄘㄣ",
	"ts'eng":  "ㄘㄥ",
	"ts'o":    "ㄘㄨㄛ",
	"ts'ou":   "ㄘㄡ",
	"ts'u":    "ㄘㄨ",
	"ts'uan":  "ㄘㄨㄢ",
	"ts'ui":   "ㄘㄨㄟ",
	"ts'un":   "ㄘㄨㄣ",
	"ts'ung":  "ㄘㄨㄥ",
	"tsa":     "ㄗㄚ",
	"tsai":    "ㄗㄞ",
	"tsan":    "ㄗㄢ",
	"tsang":   "ㄗㄤ",
	"tsao":    "ㄗㄠ",
	"tse":     "ㄗㄜ",
	"tsei":    "ㄗㄟ",
	"tsen":    "ㄗㄣ",
	"tseng":   "ㄗㄥ",
	"tso":     "ㄗㄨㄛ",
	"tsou":    "ㄗㄡ",
	"tsu":     "ㄗㄨ",
	"tsuan":   "ㄗㄨㄢ",
	"tsui":    "ㄗㄨㄟ",
	"tsun":    "ㄗㄨㄣ",
	"tsung":   "ㄗㄨㄥ",
	"tu":      "ㄉㄨ",
	"tuan":    "ㄉㄨㄢ",
	"tui":     "ㄉㄨㄟ",
	"tun":     "ㄉㄨㄣ",
	"tung":    "ㄉㄨㄥ",
	"tz'u":    "ㄘ",
	"tzu":     "ㄗ",
	"wa":      "ㄨㄚ",
	"wai":     "ㄨㄞ",
	"wan":     "ㄨㄢ",
	"wang":    "ㄨㄤ",
	"wei":     "ㄨㄟ",
	"wen":     "ㄨㄣ",
	"weng":    "ㄨㄥ",
	"wo":      "ㄨㄛ",
	"wu":      "ㄨ",
	"ya":      "ㄧㄚ",
	"yan":     "ㄧㄢ",
	"yang":    "ㄧㄤ",
	"yao":     "ㄧㄠ",
	"yeh":     "ㄧㄝ",
	"yin":     "ㄧㄣ",
	"ying":    "ㄧㄥ",
	"yu":      "ㄧㄡ",
	"yung":    "ㄩㄥ",
	"yv":      "ㄩ",
	"yvan":    "ㄩㄢ",
	"yveh":    "ㄩㄝ",
	"yvn":     "ㄩㄣ",
}

var bopomofoToPinyinSteps = [...][2]string{
	{" ", "1"},
	{"ˊ", "2"},
	{"ˇ", "3"},
	{"ˋ", "4"},
	{"˙", "5"},
	{"ㄅㄧㄝ", "bie"},
	{"ㄅㄧㄠ", "biao"},
	{"ㄅㄧㄢ", "bian"},
	{"ㄅㄧㄣ", "bin"},
	{"ㄅㄧㄥ", "bing"},
	{"ㄆㄧㄚ", "pia"},
	{"ㄆㄧㄝ", "pie"},
	{"ㄆㄧㄠ", "piao"},
	{"ㄆㄧㄢ", "pian"},
	{"ㄆㄧㄣ", "pin"},
	{"ㄆㄧㄥ", "ping"},
	{"ㄇㄧㄝ", "mie"},
	{"ㄇㄧㄠ", "miao"},
	{"ㄇㄧㄡ", "miu"},
	{"ㄇㄧㄢ", "mian"},
	{"ㄇㄧㄣ", "min"},
	{"ㄇㄧㄥ", "ming"},
	{"ㄈㄧㄠ", "fiao"},
	{"ㄈㄨㄥ", "fong"},
	{"ㄉㄧㄚ", "dia"},
	{"ㄉㄧㄝ", "die"},
	{"ㄉㄧㄠ", "diao"},
	{"ㄉㄧㄡ", "diu"},
	{"ㄉㄧㄢ", "dian"},
	{"ㄉㄧㄥ", "ding"},
	{"ㄉㄨㄛ", "duo"},
	{"ㄉㄨㄟ", "dui"},
	{"ㄉㄨㄢ", "duan"},
	{"ㄉㄨㄣ", "dun"},
	{"ㄉㄨㄥ", "dong"},
	{"ㄊㄧㄝ", "tie"},
	{"ㄊㄧㄠ", "tiao"},
	{"ㄊㄧㄢ", "tian"},
	{"ㄊㄧㄥ", "ting"},
	{"ㄊㄨㄛ", "tuo"},
	{"ㄊㄨㄟ", "tui"},
	{"ㄊㄨㄢ", "tuan"},
	{"ㄊㄨㄣ", "tun"},
	{"ㄊㄨㄥ", "tong"},
	{"ㄋㄧㄝ", "nie"},
	{"ㄋㄧㄠ", "niao"},
	{"ㄋㄧㄡ", "niu"},
	{"ㄋㄧㄢ", "nian"},
	{"ㄋㄧㄣ", "nin"},
	{"ㄋㄧㄤ", "niang"},
	{"ㄋㄧㄥ", "ning"},
	{"ㄋㄨㄛ", "nuo"},
	{"ㄋㄨㄟ", "nui"},
	{"ㄋㄨㄢ", "nuan"},
	{"ㄋㄨㄣ", "nun"},
	{"ㄋㄨㄥ", "nong"},
	{"ㄋㄩㄝ", "nve"},
	{"ㄌㄧㄚ", "lia"},
	{"ㄌㄧㄝ", "lie"},
	{"ㄌㄧㄠ", "liao"},
	{"ㄌㄧㄡ", "liu"},
	{"ㄌㄧㄢ", "lian"},
	{"ㄌㄧㄣ", "lin"},
	{"ㄌㄧㄤ", "liang"},
	{"ㄌㄧㄥ", "ling"},
	{"ㄌㄨㄛ", "luo"},
	{"ㄌㄨㄢ", "luan"},
	{"ㄌㄨㄣ", "lun"},
	{"ㄌㄨㄥ", "long"},
	{"ㄌㄩㄝ", "lve"},
	{"ㄌㄩㄢ", "lvan"},
	{"ㄍㄧㄠ", "giao"},
	{"ㄍㄧㄣ", "gin"},
	{"ㄍㄨㄚ", "gua"},
	{"ㄍㄨㄛ", "guo"},
	{"ㄍㄨㄜ", "gue"},
	{"ㄍㄨㄞ", "guai"},
	{"ㄍㄨㄟ", "gui"},
	{"ㄍㄨㄢ", "guan"},
	{"ㄍㄨㄣ", "gun"},
	{"ㄍㄨㄤ", "guang"},
	{"ㄍㄨㄥ", "gong"},
	{"ㄎㄧㄡ", "kiu"},
	{"ㄎㄧㄤ", "kiang"},
	{"ㄎㄨㄚ", "kua"},
	{"ㄎㄨㄛ", "kuo"},
	{"ㄎㄨㄞ", "kuai"},
	{"ㄎㄨㄟ", "kui"},
	{"ㄎㄨㄢ", "kuan"},
	{"ㄎㄨㄣ", "kun"},
	{"ㄎㄨㄤ", "kuang"},
	{"ㄎㄨㄥ", "kong"},
	{"ㄏㄨㄚ", "hua"},
	{"ㄏㄨㄛ", "huo"},
	{"ㄏㄨㄞ", "huai"},
	{"ㄏㄨㄟ", "hui"},
	{"ㄏㄨㄢ", "huan"},
	{"ㄏㄨㄣ", "hun"},
	{"ㄏㄨㄤ", "huang"},
	{"ㄏㄨㄥ", "hong"},
	{"ㄐㄧㄚ", "jia"},
	{"ㄐㄧㄝ", "jie"},
	{"ㄐㄧㄠ", "jiao"},
	{"ㄐㄧㄡ", "jiu"},
	{"ㄐㄧㄢ", "jian"},
	{"ㄐㄧㄣ", "jin"},
	{"ㄐㄧㄤ", "jiang"},
	{"ㄐㄧㄥ", "jing"},
	{"ㄐㄩㄝ", "jue"},
	{"ㄐㄩㄢ", "juan"},
	{"ㄐㄩㄣ", "jun"},
	{"ㄐㄩㄥ", "jiong"},
	{"ㄑㄧㄚ", "qia"},
	{"ㄑㄧㄝ", "qie"},
	{"ㄑㄧㄠ", "qiao"},
	{"ㄑㄧㄡ", "qiu"},
	{"ㄑㄧㄢ", "qian"},
	{"ㄑㄧㄣ", "qin"},
	{"ㄑㄧㄤ", "qiang"},
	{"ㄑㄧㄥ", "qing"},
	{"ㄑㄩㄝ", "que"},
	{"ㄑㄩㄢ", "quan"},
	{"ㄑㄩㄣ", "qun"},
	{"ㄑㄩㄥ", "qiong"},
	{"ㄒㄧㄚ", "xia"},
	{"ㄒㄧㄝ", "xie"},
	{"ㄒㄧㄠ", "xiao"},
	{"ㄒㄧㄡ", "xiu"},
	{"ㄒㄧㄢ", "xian"},
	{"ㄒㄧㄣ", "xin"},
	{"ㄒㄧㄤ", "xiang"},
	{"ㄒㄧㄥ", "xing"},
	{"ㄒㄩㄝ", "xue"},
	{"ㄒㄩㄢ", "xuan"},
	{"ㄒㄩㄣ", "xun"},
	{"ㄒㄩㄥ", "xiong"},
	{"ㄓㄨㄚ", "zhua"},
	{"ㄓㄨㄛ", "zhuo"},
	{"ㄓㄨㄞ", "zhuai"},
	{"ㄓㄨㄟ", "zhui"},
	{"ㄓㄨㄢ", "zhuan"},
	{"ㄓㄨㄣ", "zhun"},
	{"ㄓㄨㄤ", "zhuang"},
	{"ㄓㄨㄥ", "zhong"},
	{"ㄔㄨㄚ", "chua"},
	{"ㄔㄨㄛ", "chuo"},
	{"ㄔㄨㄞ", "chuai"},
	{"ㄔㄨㄟ", "chui"},
	{"ㄔㄨㄢ", "chuan"},
	{"ㄔㄨㄣ", "chun"},
	{"ㄔㄨㄤ", "chuang"},
	{"ㄔㄨㄥ", "chong"},
	{"ㄕㄨㄚ", "shua"},
	{"ㄕㄨㄛ", "shuo"},
	{"ㄕㄨㄞ", "shuai"},
	{"ㄕㄨㄟ", "shui"},
	{"ㄕㄨㄢ", "shuan"},
	{"ㄕㄨㄣ", "shun"},
	{"ㄕㄨㄤ", "shuang"},
	{"ㄖㄨㄛ", "ruo"},
	{"ㄖㄨㄟ", "rui"},
	{"ㄖㄨㄢ", "ruan"},
	{"ㄖㄨㄣ", "run"},
	{"ㄖㄨㄥ", "rong"},
	{"ㄗㄨㄛ", "zuo"},
	{"ㄗㄨㄟ", "zui"},
	{"ㄗㄨㄢ", "zuan"},
	{"ㄗㄨㄣ", "zun"},
	{"ㄗㄨㄥ", "zong"},
	{"ㄘㄨㄛ", "cuo"},
	{"ㄘㄨㄟ", "cui"},
	{"ㄘㄨㄢ", "cuan"},
	{"ㄘㄨㄣ", "cun"},
	{"ㄘㄨㄥ", "cong"},
	{"ㄙㄨㄛ", "suo"},
	{"ㄙㄨㄟ", "sui"},
	{"ㄙㄨㄢ", "suan"},
	{"ㄙㄨㄣ", "sun"},
	{"ㄙㄨㄥ", "song"},
	{"ㄅㄧㄤ", "biang"},
	{"ㄉㄨㄤ", "duang"},
	{"ㄅㄚ", "ba"},
	{"ㄅㄛ", "bo"},
	{"ㄅㄞ", "bai"},
	{"ㄅㄟ", "bei"},
	{"ㄅㄠ", "bao"},
	{"ㄅㄢ", "ban"},
	{"ㄅㄣ", "ben"},
	{"ㄅㄤ", "bang"},
	{"ㄅㄥ", "beng"},
	{"ㄅㄧ", "bi"},
	{"ㄅㄨ", "bu"},
	{"ㄆㄚ", "pa"},
	{"ㄆㄛ", "po"},
	{"ㄆㄞ", "pai"},
	{"ㄆㄟ", "pei"},
	{"ㄆㄠ", "pao"},
	{"ㄆㄡ", "pou"},
	{"ㄆㄢ", "pan"},
	{"ㄆㄣ", "pen"},
	{"ㄆㄤ", "pang"},
	{"ㄆㄥ", "peng"},
	{"ㄆㄧ", "pi"},
	{"ㄆㄨ", "pu"},
	{"ㄇㄚ", "ma"},
	{"ㄇㄛ", "mo"},
	{"ㄇㄜ", "me"},
	{"ㄇㄞ", "mai"},
	{"ㄇㄟ", "mei"},
	{"ㄇㄠ", "mao"},
	{"ㄇㄡ", "mou"},
	{"ㄇㄢ", "man"},
	{"ㄇㄣ", "men"},
	{"ㄇㄤ", "mang"},
	{"ㄇㄥ", "meng"},
	{"ㄇㄧ", "mi"},
	{"ㄇㄨ", "mu"},
	{"ㄈㄚ", "fa"},
	{"ㄈㄛ", "fo"},
	{"ㄈㄟ", "fei"},
	{"ㄈㄡ", "fou"},
	{"ㄈㄢ", "fan"},
	{"ㄈㄣ", "fen"},
	{"ㄈㄤ", "fang"},
	{"ㄈㄥ", "feng"},
	{"ㄈㄨ", "fu"},
	{"ㄉㄚ", "da"},
	{"ㄉㄜ", "de"},
	{"ㄉㄞ", "dai"},
	{"ㄉㄟ", "dei"},
	{"ㄉㄠ", "dao"},
	{"ㄉㄡ", "dou"},
	{"ㄉㄢ", "dan"},
	{"ㄉㄣ", "den"},
	{"ㄉㄤ", "dang"},
	{"ㄉㄥ", "deng"},
	{"ㄉㄧ", "di"},
	{"ㄉㄨ", "du"},
	{"ㄊㄚ", "ta"},
	{"ㄊㄜ", "te"},
	{"ㄊㄞ", "tai"},
	{"ㄊㄠ", "tao"},
	{"ㄊㄡ", "tou"},
	{"ㄊㄢ", "tan"},
	{"ㄊㄤ", "tang"},
	{"ㄊㄥ", "teng"},
	{"ㄊㄧ", "ti"},
	{"ㄊㄨ", "tu"},
	{"ㄋㄚ", "na"},
	{"ㄋㄜ", "ne"},
	{"ㄋㄞ", "nai"},
	{"ㄋㄟ", "nei"},
	{"ㄋㄠ", "nao"},
	{"ㄋㄡ", "nou"},
	{"ㄋㄢ", "nan"},
	{"ㄋㄣ", "nen"},
	{"ㄋㄤ", "nang"},
	{"ㄋㄥ", "neng"},
	{"ㄋㄧ", "ni"},
	{"ㄋㄨ", "nu"},
	{"ㄋㄩ", "nv"},
	{"ㄌㄚ", "la"},
	{"ㄌㄛ", "lo"},
	{"ㄌㄜ", "le"},
	{"ㄌㄞ", "lai"},
	{"ㄌㄟ", "lei"},
	{"ㄌㄠ", "lao"},
	{"ㄌㄡ", "lou"},
	{"ㄌㄢ", "lan"},
	{"ㄌㄤ", "lang"},
	{"ㄌㄥ", "leng"},
	{"ㄌㄧ", "li"},
	{"ㄌㄨ", "lu"},
	{"ㄌㄩ", "lv"},
	{"ㄍㄚ", "ga"},
	{"ㄍㄜ", "ge"},
	{"ㄍㄞ", "gai"},
	{"ㄍㄟ", "gei"},
	{"ㄍㄠ", "gao"},
	{"ㄍㄡ", "gou"},
	{"ㄍㄢ", "gan"},
	{"ㄍㄣ", "gen"},
	{"ㄍㄤ", "gang"},
	{"ㄍㄥ", "geng"},
	{"ㄍㄧ", "gi"},
	{"ㄍㄨ", "gu"},
	{"ㄎㄚ", "ka"},
	{"ㄎㄜ", "ke"},
	{"ㄎㄞ", "kai"},
	{"ㄎㄠ", "kao"},
	{"ㄎㄡ", "kou"},
	{"ㄎㄢ", "kan"},
	{"ㄎㄣ", "ken"},
	{"ㄎㄤ", "kang"},
	{"ㄎㄥ", "keng"},
	{"ㄎㄨ", "ku"},
	{"ㄏㄚ", "ha"},
	{"ㄏㄜ", "he"},
	{"ㄏㄞ", "hai"},
	{"ㄏㄟ", "hei"},
	{"ㄏㄠ", "hao"},
	{"ㄏㄡ", "hou"},
	{"ㄏㄢ", "han"},
	{"ㄏㄣ", "hen"},
	{"ㄏㄤ", "hang"},
	{"ㄏㄥ", "heng"},
	{"ㄏㄨ", "hu"},
	{"ㄐㄧ", "ji"},
	{"ㄐㄩ", "ju"},
	{"ㄑㄧ", "qi"},
	{"ㄑㄩ", "qu"},
	{"ㄒㄧ", "xi"},
	{"ㄒㄩ", "xu"},
	{"ㄓㄚ", "zha"},
	{"ㄓㄜ", "zhe"},
	{"ㄓㄞ", "zhai"},
	{"ㄓㄟ", "zhei"},
	{"ㄓㄠ", "zhao"},
	{"ㄓㄡ", "zhou"},
	{"ㄓㄢ", "zhan"},
	{"ㄓㄣ", "zhen"},
	{"ㄓㄤ", "zhang"},
	{"ㄓㄥ", "zheng"},
	{"ㄓㄨ", "zhu"},
	{"ㄔㄚ", "cha"},
	{"ㄔㄜ", "che"},
	{"ㄔㄞ", "chai"},
	{"ㄔㄠ", "chao"},
	{"ㄔㄡ", "chou"},
	{"ㄔㄢ", "chan"},
	{"ㄔㄣ", "chen"},
	{"ㄔㄤ", "chang"},
	{"ㄔㄥ", "cheng"},
	{"ㄔㄨ", "chu"},
	{"ㄕㄚ", "sha"},
	{"ㄕㄜ", "she"},
	{"ㄕㄞ", "shai"},
	{"ㄕㄟ", "shei"},
	{"ㄕㄠ", "shao"},
	{"ㄕㄡ", "shou"},
	{"ㄕㄢ", "shan"},
	{"ㄕㄣ", "shen"},
	{"ㄕㄤ", "shang"},
	{"ㄕㄥ", "sheng"},
	{"ㄕㄨ", "shu"},
	{"ㄖㄜ", "re"},
	{"ㄖㄠ", "rao"},
	{"ㄖㄡ", "rou"},
	{"ㄖㄢ", "ran"},
	{"ㄖㄣ", "ren"},
	{"ㄖㄤ", "rang"},
	{"ㄖㄥ", "reng"},
	{"ㄖㄨ", "ru"},
	{"ㄗㄚ", "za"},
	{"ㄗㄜ", "ze"},
	{"ㄗㄞ", "zai"},
	{"ㄗㄟ", "zei"},
	{"ㄗㄠ", "zao"},
	{"ㄗㄡ", "zou"},
	{"ㄗㄢ", "zan"},
	{"ㄗㄣ", "zen"},
	{"ㄗㄤ", "zang"},
	{"ㄗㄥ", "zeng"},
	{"ㄗㄨ", "zu"},
	{"ㄘㄚ", "ca"},
	{"ㄘㄜ", "ce"},
	{"ㄘㄞ", "cai"},
	{"ㄘㄟ", "cei"},
	{"ㄘㄠ", "cao"},
	{"ㄘㄡ", "cou"},
	{"ㄘㄢ", "can"},
	{"ㄘㄣ", "cen"},
	{"ㄘㄤ", "cang"},
	{"ㄘㄥ", "ceng"},
	{"ㄘㄨ", "cu"},
	{"ㄙㄚ", "sa"},
	{"ㄙㄜ", "se"},
	{"ㄙㄞ", "sai"},
	{"ㄙㄟ", "sei"},
	{"ㄙㄠ", "sao"},
	{"ㄙㄡ", "sou"},
	{"ㄙㄢ", "san"},
	{"ㄙㄣ", "sen"},
	{"ㄙㄤ", "sang"},
	{"ㄙㄥ", "seng"},
	{"ㄙㄨ", "su"},
	{"ㄧㄚ", "ya"},
	{"ㄧㄛ", "yo"},
	{"ㄧㄝ", "ye"},
	{"ㄧㄞ", "yai"},
	{"ㄧㄠ", "yao"},
	{"ㄧㄡ", "you"},
	{"ㄧㄢ", "yan"},
	{"ㄧㄣ", "yin"},
	{"ㄧㄤ", "yang"},
	{"ㄧㄥ", "ying"},
	{"ㄨㄚ", "wa"},
	{"ㄨㄛ", "wo"},
	{"ㄨㄞ", "wai"},
	{"ㄨㄟ", "wei"},
	{"ㄨㄢ", "wan"},
	{"ㄨㄣ", "wen"},
	{"ㄨㄤ", "wang"},
	{"ㄨㄥ", "weng"},
	{"ㄩㄝ", "yue"},
	{"ㄩㄢ", "yuan"},
	{"ㄩㄣ", "yun"},
	{"ㄩㄥ", "yong"},
	{"ㄅ", "b"},
	{"ㄆ", "p"},
	{"ㄇ", "m"},
	{"ㄈ", "f"},
	{"ㄉ", "d"},
	{"ㄊ", "t"},
	{"ㄋ", "n"},
	{"ㄌ", "l"},
	{"ㄍ", "g"},
	{"ㄎ", "k"},
	{"ㄏ", "h"},
	{"ㄐ", "j"},
	{"ㄑ", "q"},
	{"ㄒ", "x"},
	{"ㄓ", "zhi"},
	{"ㄔ", "chi"},
	{"ㄕ", "shi"},
	{"ㄖ", "ri"},
	{"ㄗ", "zi"},
	{"ㄘ", "ci"},
	{"ㄙ", "si"},
	{"ㄚ", "a"},
	{"ㄛ", "o"},
	{"ㄜ", "e"},
	{"ㄝ", "eh"},
	{"ㄞ", "ai"},
	{"ㄟ", "ei"},
	{"ㄠ", "ao"},
	{"ㄡ", "ou"},
	{"ㄢ", "an"},
	{"ㄣ", "en"},
	{"ㄤ", "ang"},
	{"ㄥ", "eng"},
	{"ㄦ", "er"},
	{"ㄧ", "yi"},
	{"ㄨ", "wu"},
	{"ㄩ", "yu"},
}

var textbookToneSteps = [...][2]string{
	{"iang1", "iāng"},
	{"iang2", "iáng"},
	{"iang3", "iǎng"},
	{"iang4", "iàng"},
	{"iong1", "iōng"},
	{"iong2", "ióng"},
	{"iong3", "iǒng"},
	{"iong4", "iòng"},
	{"uang1", "uāng"},
	{"uang2", "uáng"},
	{"uang3", "uǎng"},
	{"uang4", "uàng"},
	{"uang5", "uang"},
	{"ang1", "āng"},
	{"ang2", "áng"},
	{"ang3", "ǎng"},
	{"ang4", "àng"},
	{"ang5", "ang"},
	{"eng1", "ēng"},
	{"eng2", "éng"},
	{"eng3", "ěng"},
	{"eng4", "èng"},
	{"ian1", "iān"},
	{"ian2", "ián"},
	{"ian3", "iǎn"},
	{"ian4", "iàn"},
	{"iao1", "iāo"},
	{"iao2", "iáo"},
	{"iao3", "iǎo"},
	{"iao4", "iào"},
	{"ing1", "īng"},
	{"ing2", "íng"},
	{"ing3", "ǐng"},
	{"ing4", "ìng"},
	{"ong1", "ōng"},
	{"ong2", "óng"},
	{"ong3", "ǒng"},
	{"ong4", "òng"},
	{"uai1", "uāi"},
	{"uai2", "uái"},
	{"uai3", "uǎi"},
	{"uai4", "uài"},
	{"uan1", "uān"},
	{"uan2", "uán"},
	{"uan3", "uǎn"},
	{"uan4", "uàn"},
	{"van2", "üán"},
	{"van3", "üǎn"},
	{"ai1", "āi"},
	{"ai2", "ái"},
	{"ai3", "ǎi"},
	{"ai4", "ài"},
	{"ai5", "ai"},
	{"an1", "ān"},
	{"an2", "án"},
	{"an3", "ǎn"},
	{"an4", "àn"},
	{"ao1", "āo"},
	{"ao2", "áo"},
	{"ao3", "ǎo"},
	{"ao4", "ào"},
	{"ao5", "ao"},
	{"eh2", "ế"},
	{"eh3", "êˇ"},
	{"eh4", "ề"},
	{"eh5", "ê"},
	{"ei1", "ēi"},
	{"ei2", "éi"},
	{"ei3", "ěi"},
	{"ei4", "èi"},
	{"ei5", "ei"},
	{"en1", "ēn"},
	{"en2", "én"},
	{"en3", "ěn"},
	{"en4", "èn"},
	{"en5", "en"},
	{"er1", "ēr"},
	{"er2", "ér"},
	{"er3", "ěr"},
	{"er4", "èr"},
	{"er5", "er"},
	{"ia1", "iā"},
	{"ia2", "iá"},
	{"ia3", "iǎ"},
	{"ia4", "ià"},
	{"ie1", "iē"},
	{"ie2", "ié"},
	{"ie3", "iě"},
	{"ie4", "iè"},
	{"ie5", "ie"},
	{"in1", "īn"},
	{"in2", "ín"},
	{"in3", "ǐn"},
	{"in4", "ìn"},
	{"iu1", "iū"},
	{"iu2", "iú"},
	{"iu3", "iǔ"},
	{"iu4", "iù"},
	{"ou1", "ōu"},
	{"ou2", "óu"},
	{"ou3", "ǒu"},
	{"ou4", "òu"},
	{"ou5", "ou"},
	{"ua1", "uā"},
	{"ua2", "uá"},
	{"ua3", "uǎ"},
	{"ua4", "uà"},
	{"ue1", "uē"},
	{"ue2", "ué"},
	{"ue3", "uě"},
	{"ue4", "uè"},
	{"ui1", "uī"},
	{"ui2", "uí"},
	{"ui3", "uǐ"},
	{"ui4", "uì"},
	{"un1", "ūn"},
	{"un2", "ún"},
	{"un3", "ǔn"},
	{"un4", "ùn"},
	{"uo1", "uō"},
	{"uo2", "uó"},
	{"uo3", "uǒ"},
	{"uo4", "uò"},
	{"uo5", "uo"},
	{"ve1", "üē"},
	{"ve3", "üě"},
	{"ve4", "üè"},
	{"a1", "ā"},
	{"a2", "á"},
	{"a3", "ǎ"},
	{"a4", "à"},
	{"a5", "a"},
	{"e1", "ē"},
	{"e2", "é"},
	{"e3", "ě"},
	{"e4", "è"},
	{"e5", "e"},
	{"i1", "ī"},
	{"i2", "í"},
	{"i3", "ǐ"},
	{"i4", "ì"},
	{"i5", "i"},
	{"o1", "ō"},
	{"o2", "ó"},
	{"o3", "ǒ"},
	{"o4", "ò"},
	{"o5", "o"},
	{"u1", "ū"},
	{"u2", "ú"},
	{"u3", "ǔ"},
	{"u4", "ù"},
	{"v1", "ǖ"},
	{"v2", "ǘ"},
	{"v3", "ǚ"},
	{"v4", "ǜ"},
}
